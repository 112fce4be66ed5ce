// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}

	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("null device exposes non-nil GPU resources")
	}
	if got := h.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want undefined", got)
	}
	if got := h.AdapterInfo(); got.Type != gpucontext.AdapterTypeUnknown {
		t.Errorf("AdapterInfo().Type = %v, want unknown", got.Type)
	}
}
