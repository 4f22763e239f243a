package psychro

import (
	"bytes"
	"fmt"
	"strconv"
)

// CSV and plain-text output. Column names follow the result table of
// the web calculator.

// StatesToCSV writes one CSV row per state.
func StatesToCSV(buf *bytes.Buffer, states []MoistAirState) {
	buf.WriteString("tbs,tbm,ur,w,tpo,h,v,p_v,p_ws,p_atm\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, s := range states {
		buf.WriteString(strconv.FormatFloat(s.TBS, 'f', -1, 64))
		writeFloat(s.TBM)
		writeFloat(s.UR)
		writeFloat(s.W)
		writeFloat(s.TPO)
		writeFloat(s.H)
		writeFloat(s.V)
		writeFloat(s.Pv)
		writeFloat(s.Pws)
		writeFloat(s.Patm)
		buf.WriteString("\n")
	}
}

// ToCSV writes the chart curves as one row per temperature sample:
// the saturation curve followed by a pair of columns per RH curve.
func (c *Chart) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("tbs")
	buf.WriteString(",p_ws")
	buf.WriteString(",w_s")
	for _, rc := range c.RHCurves {
		fmt.Fprintf(buf, ",p_v_ur%.0f", rc.UR)
		fmt.Fprintf(buf, ",w_ur%.0f", rc.UR)
	}
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := range c.TBS {
		buf.WriteString(strconv.FormatFloat(c.TBS[i], 'f', -1, 64))
		writeFloat(c.Saturation.Pv[i])
		writeFloat(c.Saturation.W[i])
		for _, rc := range c.RHCurves {
			writeFloat(rc.Pv[i])
			writeFloat(rc.W[i])
		}
		buf.WriteString("\n")
	}
}

// ToText writes the bilingual property table shown by the calculator.
func (s MoistAirState) ToText(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "Atmospheric Pressure / Pressão Atmosférica: %.2f kPa\n", s.Patm)
	fmt.Fprintf(buf, "Dry-bulb Temperature / Temperatura de Bulbo Seco: %.2f °C\n", s.TBS)
	fmt.Fprintf(buf, "Wet-bulb Temperature / Temperatura de Bulbo Molhado: %.2f °C\n", s.TBM)
	fmt.Fprintf(buf, "Dew Point Temperature / Temperatura de Ponto de Orvalho: %.2f °C\n", s.TPO)
	fmt.Fprintf(buf, "Relative Humidity / Umidade Relativa: %.2f %%\n", s.UR)
	fmt.Fprintf(buf, "Humidity Ratio / Razão de Mistura: %.2f g/kg\n", s.W*1000)
	fmt.Fprintf(buf, "Specific Volume / Volume Específico: %.4f m³/kg\n", s.V)
	fmt.Fprintf(buf, "Enthalpy / Entalpia: %.2f kJ/kg\n", s.H)
	fmt.Fprintf(buf, "Vapor Pressure / Pressão de Vapor: %.4f kPa\n", s.Pv)
	fmt.Fprintf(buf, "Saturation Pressure / Pressão de Saturação: %.4f kPa\n", s.Pws)
}
