package psychro

import "math"

// MoistAirState is the complete thermodynamic state of humid air at a
// given atmospheric pressure. A fresh value is built on every resolver
// call and never mutated afterwards.
type MoistAirState struct {
	TBS  float64 // dry-bulb temperature (temperatura de bulbo seco) [°C]
	TBM  float64 // wet-bulb temperature (temperatura de bulbo molhado) [°C]
	UR   float64 // relative humidity (umidade relativa) [%]
	W    float64 // humidity ratio (razão de mistura) [kg/kg(DA)]
	TPO  float64 // dew point temperature (temperatura de ponto de orvalho) [°C]
	H    float64 // specific enthalpy (entalpia) [kJ/kg(DA)]
	V    float64 // specific volume (volume específico) [m³/kg(DA)]
	Pv   float64 // vapor pressure (pressão de vapor) [kPa]
	Pws  float64 // saturation vapor pressure at TBS [kPa]
	Patm float64 // atmospheric pressure, caller-supplied [kPa]
}

// PropertiesFromTbsTbm resolves the state from dry-bulb and wet-bulb
// temperatures.
//
// Args:
//
//	tbs: dry-bulb temperature [°C]
//	tbm: wet-bulb temperature [°C]
//	patm: atmospheric pressure [kPa]
//
// No precondition is enforced: tbm > tbs produces a physically
// inconsistent but non-crashing result. Validation belongs to the
// calling layer.
func PropertiesFromTbsTbm(tbs, tbm, patm float64) MoistAirState {
	pws := SaturationVaporPressure(tbs)

	var w, pv, ur, tpo float64
	if math.Abs(tbs-tbm) < 0.01 {
		// Saturated air: tbs = tbm = tpo. The general formula below
		// degenerates as (tbs - tbm) -> 0, so answer directly.
		pv = pws
		ur = 100.0
		w = HumidityRatioFromVaporPressure(pv, patm)
		tpo = tbs
	} else {
		ws := HumidityRatioFromVaporPressure(SaturationVaporPressure(tbm), patm)
		hfg := 2501 - 2.326*tbm // latent heat of vaporization [kJ/kg]
		// The factor only vanishes for tbs-tbm near hfg/4.186
		// (~600°C of depression), unreachable for meaningful input;
		// left unguarded.
		w = ((hfg-4.186*(tbs-tbm))*ws - 1.006*(tbs-tbm)) / (hfg - 4.186*(tbs-tbm))
		pv = VaporPressureFromHumidityRatio(w, patm)
		ur = RelativeHumidityFromVaporPressure(pv, pws)
		tpo = DewPointTemperature(pv)
	}

	return MoistAirState{
		TBS:  tbs,
		TBM:  tbm,
		UR:   ur,
		W:    w,
		TPO:  tpo,
		H:    Enthalpy(tbs, w),
		V:    SpecificVolume(tbs, w, patm),
		Pv:   pv,
		Pws:  pws,
		Patm: patm,
	}
}

// PropertiesFromTbsUR resolves the state from the dry-bulb temperature
// and the relative humidity.
//
// Args:
//
//	tbs: dry-bulb temperature [°C]
//	ur: relative humidity [%]
//	patm: atmospheric pressure [kPa]
func PropertiesFromTbsUR(tbs, ur, patm float64) MoistAirState {
	pws := SaturationVaporPressure(tbs)
	pv := ur / 100 * pws
	w := HumidityRatioFromVaporPressure(pv, patm)
	tpo := DewPointTemperature(pv)

	var tbm float64
	if ur >= 99.9 {
		tbm = tbs // at saturation the wet bulb equals the dry bulb
	} else {
		tbm, _ = WetBulbTemperature(tbs, w, patm)
	}

	return MoistAirState{
		TBS:  tbs,
		TBM:  tbm,
		UR:   ur,
		W:    w,
		TPO:  tpo,
		H:    Enthalpy(tbs, w),
		V:    SpecificVolume(tbs, w, patm),
		Pv:   pv,
		Pws:  pws,
		Patm: patm,
	}
}

// PropertiesFromTbsTpo resolves the state from the dry-bulb and dew
// point temperatures. The dew point is the temperature at which the
// current vapor pressure equals the saturation pressure, so
// pv = pws(tpo).
//
// Args:
//
//	tbs: dry-bulb temperature [°C]
//	tpo: dew point temperature [°C]
//	patm: atmospheric pressure [kPa]
func PropertiesFromTbsTpo(tbs, tpo, patm float64) MoistAirState {
	pws := SaturationVaporPressure(tbs)
	pv := SaturationVaporPressure(tpo)
	ur := RelativeHumidityFromVaporPressure(pv, pws)
	w := HumidityRatioFromVaporPressure(pv, patm)

	var tbm float64
	if ur >= 99.9 {
		tbm = tbs
	} else {
		tbm, _ = WetBulbTemperature(tbs, w, patm)
	}

	return MoistAirState{
		TBS:  tbs,
		TBM:  tbm,
		UR:   ur,
		W:    w,
		TPO:  tpo,
		H:    Enthalpy(tbs, w),
		V:    SpecificVolume(tbs, w, patm),
		Pv:   pv,
		Pws:  pws,
		Patm: patm,
	}
}
