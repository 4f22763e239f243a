package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewChart_Axis(t *testing.T) {
	c := NewChart(101.325, -10, 50, 61, DefaultRHLevels)

	assert.Equal(t, len(c.TBS), 61)
	assert.Equal(t, c.TBS[0], -10.0)
	assert.Equal(t, c.TBS[60], 50.0)
	assert.Equal(t, len(c.RHCurves), 4)
	assert.Equal(t, c.Patm, 101.325)
}

// The saturation curve increases with temperature until the chart
// ceiling cuts it off
func Test_NewChart_SaturationCurve(t *testing.T) {
	c := NewChart(101.325, -10, 50, 121, nil)

	for i := 1; i < len(c.TBS); i++ {
		assert.Greater(t, c.Saturation.Pv[i], c.Saturation.Pv[i-1])
		assert.GreaterOrEqual(t, c.Saturation.W[i], c.Saturation.W[i-1])
		assert.LessOrEqual(t, c.Saturation.W[i], ChartMaxW)
	}

	// w_s(50°C) at sea level is ~0.086 kg/kg, well past the ceiling
	assert.Equal(t, c.Saturation.W[len(c.TBS)-1], ChartMaxW)
}

// A constant RH curve is the scaled saturation curve
func Test_NewChart_RHCurves(t *testing.T) {
	c := NewChart(101.325, 0, 40, 41, []float64{20})

	rc := c.RHCurves[0]
	assert.Equal(t, rc.UR, 20.0)
	for i := range c.TBS {
		assert.InDelta(t, rc.Pv[i], 0.2*c.Saturation.Pv[i], 1e-12)
	}
}

// Degenerate sample counts fall back to the two endpoints
func Test_NewChart_MinSamples(t *testing.T) {
	c := NewChart(101.325, 0, 30, 1, nil)
	assert.Equal(t, len(c.TBS), 2)
	assert.Equal(t, c.TBS[0], 0.0)
	assert.Equal(t, c.TBS[1], 30.0)
}
