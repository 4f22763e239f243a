package psychro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference points
// Notes:
//
//	Expected values from the ASHRAE Fundamentals saturation table.
func Test_SaturationVaporPressure_Reference(t *testing.T) {
	assert.InDelta(t, SaturationVaporPressure(0), 0.6112, 0.001)
	assert.InDelta(t, SaturationVaporPressure(20), 2.3388, 0.005)
	assert.InDelta(t, SaturationVaporPressure(25), 3.1692, 0.005)
	assert.InDelta(t, SaturationVaporPressure(50), 12.3499, 0.02)
	assert.InDelta(t, SaturationVaporPressure(-10), 0.2599, 0.001)
	assert.InDelta(t, SaturationVaporPressure(-30), 0.0380, 0.0005)
}

// The ice and water branches meet at 0°C within the fit tolerance
func Test_SaturationVaporPressure_BranchContinuity(t *testing.T) {
	gap := math.Abs(SaturationVaporPressure(0) - SaturationVaporPressure(-1e-9))
	assert.Less(t, gap, 2e-4)
}

// Strictly increasing over the working range -50°C..60°C
func Test_SaturationVaporPressure_Monotonic(t *testing.T) {
	prev := SaturationVaporPressure(-50)
	for tc := -49.5; tc <= 60; tc += 0.5 {
		p := SaturationVaporPressure(tc)
		assert.Greater(t, p, prev, "p_ws must increase with temperature %f", tc)
		prev = p
	}
}
