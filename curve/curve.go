// Package curve provides the easing functions used to place samples
// along a UI ramp: a small tagged-variant family evaluated as a pure
// function of (type, t, parameters), with no dynamic dispatch.
package curve

import "github.com/chewxy/math32"

// Type selects which easing function Evaluate applies.
type Type int

const (
	Linear Type = iota
	Smoothstep
	Smootherstep
	SmoothStart
	SmoothEnd
	Sigmoid
	BSpline
)

// Next cycles to the following curve type, used by interactive pickers.
func (c Type) Next() Type {
	if c == BSpline {
		return Linear
	}
	return c + 1
}

// Prev cycles to the preceding curve type.
func (c Type) Prev() Type {
	if c == Linear {
		return BSpline
	}
	return c - 1
}

// DisplayName is a short human-readable label for the curve type.
func (c Type) DisplayName() string {
	switch c {
	case Linear:
		return "Linear"
	case Smoothstep:
		return "Smoothstep"
	case Smootherstep:
		return "Smootherstep"
	case SmoothStart:
		return "Ease In"
	case SmoothEnd:
		return "Ease Out"
	case Sigmoid:
		return "Sigmoid"
	case BSpline:
		return "B-Spline"
	default:
		return "Unknown"
	}
}

// UsesStrength reports whether Config.Strength affects this curve type.
func (c Type) UsesStrength() bool {
	return c == Sigmoid
}

// ControlPoint is one (t, value) sample of a custom B-spline curve.
type ControlPoint struct {
	T, Value float32
}

// Config is the full description of one easing curve: its type, the
// steepness parameter Sigmoid uses, and the control points BSpline uses.
type Config struct {
	Type           Type
	Strength       float32
	ControlPoints  []ControlPoint
}

// DefaultConfig is linear easing with a neutral sigmoid strength.
func DefaultConfig() Config {
	return Config{Type: Linear, Strength: 1}
}

// Evaluate maps t (clamped to [0,1]) through the configured curve.
func Evaluate(cfg Config, t float32) float32 {
	t = math32.Clamp(t, 0, 1)

	switch cfg.Type {
	case Linear:
		return t
	case Smoothstep:
		return smoothstep(t)
	case Smootherstep:
		return smootherstep(t)
	case SmoothStart:
		return smoothStart(t)
	case SmoothEnd:
		return smoothEnd(t)
	case Sigmoid:
		return sigmoid(t, cfg.Strength)
	case BSpline:
		return evaluateBSpline(cfg, t)
	default:
		return t
	}
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func smootherstep(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func smoothStart(t float32) float32 {
	return t * t
}

func smoothEnd(t float32) float32 {
	return 1 - (1-t)*(1-t)
}

// sigmoid is a centered logistic curve renormalized so it hits exactly
// 0 and 1 at the domain endpoints; strength controls steepness.
func sigmoid(t, strength float32) float32 {
	k := math32.Max(strength, 0.1) * 6
	x := (t - 0.5) * k
	raw := 1 / (1 + math32.Exp(-x))

	minVal := 1 / (1 + math32.Exp(k*0.5))
	maxVal := 1 / (1 + math32.Exp(-k*0.5))
	return (raw - minVal) / (maxVal - minVal)
}

// SamplePositions returns the eased t value for each of steps equally
// spaced linear positions, the output positions ramp.Build samples at.
func SamplePositions(steps int, cfg Config) []float32 {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []float32{0}
	}

	out := make([]float32, steps)
	for i := 0; i < steps; i++ {
		linearT := float32(i) / float32(steps-1)
		out[i] = Evaluate(cfg, linearT)
	}
	return out
}
