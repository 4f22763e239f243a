package psychro

import "math"

// Saturation vapor pressure of moist air.
//
// Hyland-Wexler style correlations (ASHRAE Fundamentals, ch. 1): one
// fit over liquid water (t >= 0°C) and one over ice (t < 0°C). The two
// branches meet at 0°C only to within the fit tolerance (~6e-5 kPa).

// SaturationVaporPressure computes the saturation vapor pressure at a
// given temperature.
//
// Args:
//
//	t: temperature [°C]
//
// Returns:
//
//	saturation vapor pressure [kPa]
//
// Monotone increasing over the working range (-50°C..60°C). No domain
// check is performed; temperatures outside the fitted range degrade to
// extrapolated values.
func SaturationVaporPressure(t float64) float64 {
	T := t + T0 // absolute temperature [K]

	var logPws float64
	if t >= 0 {
		// over liquid water
		logPws = -5.8002206e3/T + 1.3914993 - 4.8640239e-2*T +
			4.1764768e-5*T*T - 1.4452093e-8*T*T*T + 6.5459673*math.Log(T)
	} else {
		// over ice
		logPws = -5.6745359e3/T + 6.3925247 - 9.677843e-3*T +
			6.2215701e-7*T*T + 2.0747825e-9*T*T*T - 9.484024e-13*T*T*T*T +
			4.1635019*math.Log(T)
	}

	return math.Exp(logPws) / 1000 // Pa -> kPa
}
