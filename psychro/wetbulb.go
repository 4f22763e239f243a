package psychro

import "math"

// Wet-bulb temperature has no closed form from (tbs, w, patm); it is
// found with a bounded fixed-step search on the psychrometric energy
// balance.

// Solver parameters
const (
	wetBulbStep    = 0.05  // °C nudged per iteration
	wetBulbEpsilon = 0.01  // tolerance on the humidity ratio [kg/kg(DA)]
	wetBulbMaxIter = 50    // iteration cap
	wetBulbFloor   = -20.0 // lower search bound [°C]
)

// WetBulbTemperature computes the wet-bulb temperature by iteration.
//
// Args:
//
//	tbs: dry-bulb temperature [°C]
//	w: humidity ratio [kg/kg(DA)]
//	patm: atmospheric pressure [kPa]
//
// Returns:
//
//	wet-bulb temperature [°C] and whether the search truly converged.
//
// The search starts at tbs-2°C and nudges the estimate by ±0.05°C per
// step, clamped to [-20°C, tbs], for at most 50 steps. When the cap is
// hit the last clamped estimate is returned with converged=false — it
// never fails. Callers that need the convergence guarantee must check
// the flag.
func WetBulbTemperature(tbs, w, patm float64) (float64, bool) {
	if math.IsNaN(tbs) || math.IsNaN(w) || math.IsNaN(patm) {
		return tbs - 5.0, false
	}

	// Very dry air has a large, roughly linear wet-bulb depression and
	// the search is unstable at that edge; answer directly.
	if w <= 0.0001 {
		return math.Max(wetBulbFloor, tbs-15.0), true
	}

	tbm := tbs - 2.0 // starting guess, close to the dry bulb

	for i := 0; i < wetBulbMaxIter; i++ {
		// Saturation humidity ratio at the current wet-bulb estimate
		ws := HumidityRatioFromVaporPressure(SaturationVaporPressure(tbm), patm)

		// Humidity ratio implied by the energy balance
		hfg := 2501 - 2.326*tbm // latent heat of vaporization [kJ/kg]
		factor := hfg - 4.186*(tbs-tbm)
		if math.Abs(factor) < 0.001 {
			if factor >= 0 {
				factor = 0.001
			} else {
				factor = -0.001
			}
		}
		wCalc := (factor*ws - 1.006*(tbs-tbm)) / factor

		if math.Abs(wCalc-w) < wetBulbEpsilon {
			return tbm, true
		}

		if wCalc > w {
			tbm -= wetBulbStep
		} else {
			tbm += wetBulbStep
		}
		tbm = math.Max(wetBulbFloor, math.Min(tbm, tbs))
	}

	return math.Max(wetBulbFloor, math.Min(tbm, tbs)), false
}
