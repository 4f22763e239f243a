package psychro

import "math"

// Atmospheric pressure module / módulo de pressão atmosférica

// Physical constants (ASHRAE Fundamentals)
const (
	Ra   = 287.05  // gas constant for dry air [J/(kg·K)]
	PStd = 101.325 // standard atmospheric pressure at sea level [kPa]
	T0   = 273.15  // zero Celsius in Kelvin
)

// AtmosphericPressure estimates the local atmospheric pressure from the
// altitude using the barometric formula.
//
// Args:
//
//	altitude: altitude above sea level [m]
//
// Returns:
//
//	atmospheric pressure [kPa], clamped to 10%..110% of the standard
//	sea-level pressure.
//
// Never fails: a NaN/Inf altitude yields the standard pressure, and the
// clamp rejects physically absurd altitudes instead of propagating NaN
// or negative pressures.
func AtmosphericPressure(altitude float64) float64 {
	if math.IsNaN(altitude) || math.IsInf(altitude, 0) {
		return PStd
	}

	patm := PStd * math.Pow(1-2.25577e-5*altitude, 5.2559)

	// Above ~44 km the base of the power goes negative and Pow returns
	// NaN; collapse to the lower clamp instead of propagating it.
	if math.IsNaN(patm) {
		patm = 0
	}

	return math.Max(PStd*0.1, math.Min(patm, PStd*1.1))
}
