package psychro

import "math"

// Algebraic conversions between the humidity quantities. All functions
// here are pure, closed-form and total: extreme inputs degrade
// numerically instead of failing.

// HumidityRatioFromVaporPressure computes the humidity ratio from the
// partial vapor pressure.
//
// Args:
//
//	pv: vapor pressure [kPa]
//	patm: atmospheric pressure [kPa]
//
// Returns:
//
//	humidity ratio [kg/kg(DA)]
func HumidityRatioFromVaporPressure(pv, patm float64) float64 {
	return 0.62198 * pv / (patm - pv)
}

// VaporPressureFromHumidityRatio is the exact inverse of
// HumidityRatioFromVaporPressure; the round trip holds to floating
// point precision.
//
// Args:
//
//	w: humidity ratio [kg/kg(DA)]
//	patm: atmospheric pressure [kPa]
//
// Returns:
//
//	vapor pressure [kPa]
func VaporPressureFromHumidityRatio(w, patm float64) float64 {
	return patm * w / (0.62198 + w)
}

// RelativeHumidityFromVaporPressure computes the relative humidity [%]
// from the vapor pressure pv and the saturation vapor pressure pws at
// the dry-bulb temperature, both in kPa.
func RelativeHumidityFromVaporPressure(pv, pws float64) float64 {
	return 100 * pv / pws
}

// DewPointTemperature computes the dew point temperature by inverting
// the Magnus-Tetens relation.
//
// Args:
//
//	pv: vapor pressure [kPa]
//
// Returns:
//
//	dew point temperature [°C], clamped to -50°C..60°C
func DewPointTemperature(pv float64) float64 {
	// The log diverges as pv -> 0; very dry air maps to a fixed low
	// dew point instead.
	if pv < 0.001 {
		return -20.0
	}

	const (
		a = 17.27
		b = 237.7 // °C
	)

	gamma := math.Log(pv * 1000 / 611.2) // pv in Pa
	tpo := b * gamma / (a - gamma)

	return math.Max(-50.0, math.Min(tpo, 60.0))
}

// SpecificVolume computes the specific volume of humid air from the
// ideal gas law.
//
// Args:
//
//	tbs: dry-bulb temperature [°C]
//	w: humidity ratio [kg/kg(DA)]
//	patm: atmospheric pressure [kPa]
//
// Returns:
//
//	specific volume [m³/kg(DA)]
func SpecificVolume(tbs, w, patm float64) float64 {
	return Ra * (tbs + T0) / (patm * 1000) * (1 + 1.6078*w)
}

// Enthalpy computes the specific enthalpy of humid air, zero at 0°C
// for dry air.
//
// Args:
//
//	tbs: dry-bulb temperature [°C]
//	w: humidity ratio [kg/kg(DA)]
//
// Returns:
//
//	specific enthalpy [kJ/kg(DA)]
func Enthalpy(tbs, w float64) float64 {
	return 1.006*tbs + w*(2501+1.86*tbs)
}
