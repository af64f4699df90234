package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothstepBoundaries(t *testing.T) {
	cfg := Config{Type: Smoothstep}
	assert.InDelta(t, 0, Evaluate(cfg, 0), 0.001)
	assert.InDelta(t, 1, Evaluate(cfg, 1), 0.001)
	assert.InDelta(t, 0.5, Evaluate(cfg, 0.5), 0.001)
}

func TestSmootherstepBoundaries(t *testing.T) {
	cfg := Config{Type: Smootherstep}
	assert.InDelta(t, 0, Evaluate(cfg, 0), 0.001)
	assert.InDelta(t, 1, Evaluate(cfg, 1), 0.001)
}

func TestSigmoidBoundaries(t *testing.T) {
	cfg := Config{Type: Sigmoid, Strength: 1}
	assert.InDelta(t, 0, Evaluate(cfg, 0), 0.01)
	assert.InDelta(t, 1, Evaluate(cfg, 1), 0.01)
}

func TestSmoothStartEndAreComplementaryShapes(t *testing.T) {
	start := Config{Type: SmoothStart}
	end := Config{Type: SmoothEnd}
	assert.InDelta(t, 0.25, Evaluate(start, 0.5), 1e-6)
	assert.InDelta(t, 0.75, Evaluate(end, 0.5), 1e-6)
}

func TestCurveTypeCyclesBothWays(t *testing.T) {
	c := Linear
	for i := 0; i < 7; i++ {
		c = c.Next()
	}
	assert.Equal(t, Linear, c)

	c = Linear
	for i := 0; i < 7; i++ {
		c = c.Prev()
	}
	assert.Equal(t, Linear, c)
}

func TestSamplePositionsEdgeCases(t *testing.T) {
	assert.Nil(t, SamplePositions(0, DefaultConfig()))
	assert.Equal(t, []float32{0}, SamplePositions(1, DefaultConfig()))

	linear := SamplePositions(5, Config{Type: Linear})
	assert.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1}, linear)
}

func TestBSplinePassesThroughEndpoints(t *testing.T) {
	cfg := Config{
		Type: BSpline,
		ControlPoints: []ControlPoint{
			{T: 0, Value: 0.1},
			{T: 0.5, Value: 0.9},
			{T: 1, Value: 0.2},
		},
	}
	assert.InDelta(t, 0.1, Evaluate(cfg, 0), 0.01)
	assert.InDelta(t, 0.2, Evaluate(cfg, 1), 0.01)
}

func TestBSplineFallsBackToLinearWithoutControlPoints(t *testing.T) {
	cfg := Config{Type: BSpline}
	assert.InDelta(t, 0.5, Evaluate(cfg, 0.5), 1e-6)
}
