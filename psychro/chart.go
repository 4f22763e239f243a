package psychro

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Numeric content of a psychrometric chart at fixed pressure: the
// saturation curve plus constant relative humidity curves, sampled over
// a temperature range. Rendering is left entirely to the caller.

// ChartMaxW is the humidity-ratio ceiling of the chart [kg/kg(DA)],
// 30 g/kg, covering the comfort range.
const ChartMaxW = 0.030

// DefaultRHLevels are the constant relative humidity curves drawn
// between the dry axis and the saturation curve.
var DefaultRHLevels = []float64{20, 40, 60, 80}

// ChartCurve is one constant relative humidity line sampled along the
// chart temperature axis.
type ChartCurve struct {
	UR float64   // curve relative humidity [%], 100 for saturation
	Pv []float64 // vapor pressure along the curve [kPa]
	W  []float64 // humidity ratio along the curve, clipped to ChartMaxW [kg/kg(DA)]
}

// Chart holds the sampled chart curves for one atmospheric pressure.
type Chart struct {
	Patm       float64    // pressure the chart is computed at [kPa]
	TBS        []float64  // temperature axis [°C]
	Saturation ChartCurve // UR = 100%
	RHCurves   []ChartCurve
}

// NewChart samples the saturation curve and one curve per entry of
// rhLevels at n evenly spaced temperatures over [minTemp, maxTemp].
//
// Args:
//
//	patm: atmospheric pressure [kPa]
//	minTemp, maxTemp: temperature axis bounds [°C]
//	n: number of samples (at least 2)
//	rhLevels: relative humidity curves to draw [%], nil for none
func NewChart(patm, minTemp, maxTemp float64, n int, rhLevels []float64) *Chart {
	if n < 2 {
		n = 2
	}

	chart := &Chart{
		Patm: patm,
		TBS:  floats.Span(make([]float64, n), minTemp, maxTemp),
	}
	chart.Saturation = sampleCurve(chart.TBS, 100, patm)
	for _, ur := range rhLevels {
		chart.RHCurves = append(chart.RHCurves, sampleCurve(chart.TBS, ur, patm))
	}
	return chart
}

func sampleCurve(tbs []float64, ur, patm float64) ChartCurve {
	c := ChartCurve{
		UR: ur,
		Pv: make([]float64, len(tbs)),
		W:  make([]float64, len(tbs)),
	}
	for i, t := range tbs {
		pv := ur / 100 * SaturationVaporPressure(t)
		c.Pv[i] = pv
		c.W[i] = math.Min(HumidityRatioFromVaporPressure(pv, patm), ChartMaxW)
	}
	return c
}
