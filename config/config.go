// Package config loads retunable visual settings for the postfx kernels.
//
// The bloom intensity, bloom alpha and the sky palette are hand-tuned
// visual constants, not derived values. Keeping them in a YAML file lets a
// game retune its look without touching kernel code. Loaded values go
// through the same host-boundary validation as directly constructed
// kernels.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/postfx"
)

// Config holds the tunable postfx settings.
type Config struct {
	Sky   SkyConfig   `yaml:"sky"`
	Bloom BloomConfig `yaml:"bloom"`
}

// SkyConfig holds the sky gradient tuning.
type SkyConfig struct {
	// Palette is the ordered anchor list, horizon first, as hex strings.
	Palette []string `yaml:"palette"`

	// MaxTowerHeight is the world-space saturation height.
	MaxTowerHeight float64 `yaml:"max_tower_height"`
}

// BloomConfig holds the bloom tuning.
type BloomConfig struct {
	Scale     float64 `yaml:"scale"`
	Intensity float64 `yaml:"intensity"`
	Alpha     float64 `yaml:"alpha"`
}

// Default returns the stock tuning: a three-stop dusk palette and a
// neutral bloom.
func Default() *Config {
	return &Config{
		Sky: SkyConfig{
			Palette:        []string{"#1b2a5a", "#5aa9e6", "#b8e3ff"},
			MaxTowerHeight: 30,
		},
		Bloom: BloomConfig{
			Scale:     1.0,
			Intensity: postfx.DefaultBloomIntensity,
			Alpha:     postfx.DefaultBloomAlpha,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse reads YAML bytes over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies the kernels' host-boundary checks to the loaded values.
func (c *Config) Validate() error {
	sky := postfx.SkyGradient{
		MaxTowerHeight: c.Sky.MaxTowerHeight,
		Palette:        c.Palette(),
	}
	if err := sky.Validate(); err != nil {
		return err
	}

	bloom := postfx.BloomFilter{
		Scale:     c.Bloom.Scale,
		Intensity: c.Bloom.Intensity,
		Alpha:     c.Bloom.Alpha,
	}
	return bloom.ValidateUniforms()
}

// Palette converts the configured hex strings to a postfx.Palette.
func (c *Config) Palette() postfx.Palette {
	pal := make(postfx.Palette, len(c.Sky.Palette))
	for i, s := range c.Sky.Palette {
		pal[i] = postfx.Hex(s)
	}
	return pal
}

// SkyGradient builds a kernel from the configured tuning. The per-frame
// uniforms y and height stay zero; the host sets them each frame.
func (c *Config) SkyGradient() *postfx.SkyGradient {
	return &postfx.SkyGradient{
		MaxTowerHeight: c.Sky.MaxTowerHeight,
		Palette:        c.Palette(),
	}
}

// BloomFilter builds a kernel from the configured tuning. The screen
// sampler is bound by the host at resolve time.
func (c *Config) BloomFilter() *postfx.BloomFilter {
	return &postfx.BloomFilter{
		Scale:     c.Bloom.Scale,
		Intensity: c.Bloom.Intensity,
		Alpha:     c.Bloom.Alpha,
	}
}
