package postfx

import (
	"fmt"
	"math"
)

// InvalidRenderParameterError reports a uniform value that would make a
// kernel produce non-finite output (division by zero, negative blur spread,
// and so on). Pixel kernels have no error channel, so these are caught at
// the host boundary before the value is uploaded or a pass is run.
type InvalidRenderParameterError struct {
	Kernel string  // kernel name, e.g. "SkyGradient"
	Param  string  // uniform name as the host contract spells it
	Value  float64 // offending value
	Reason string  // constraint that was violated
}

func (e *InvalidRenderParameterError) Error() string {
	return fmt.Sprintf("postfx: invalid render parameter %s.%s = %v: %s",
		e.Kernel, e.Param, e.Value, e.Reason)
}

// finiteParam validates that a uniform is a finite float. NaN and Inf
// propagate through kernel math into every covered pixel, so they are
// rejected here regardless of the parameter's other constraints.
func finiteParam(kernel, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidRenderParameterError{
			Kernel: kernel,
			Param:  param,
			Value:  v,
			Reason: "must be finite",
		}
	}
	return nil
}

// positiveParam validates that a uniform is finite and strictly positive.
func positiveParam(kernel, param string, v float64) error {
	if err := finiteParam(kernel, param, v); err != nil {
		return err
	}
	if v <= 0 {
		return &InvalidRenderParameterError{
			Kernel: kernel,
			Param:  param,
			Value:  v,
			Reason: "must be > 0",
		}
	}
	return nil
}
