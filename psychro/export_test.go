package psychro

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StatesToCSV(t *testing.T) {
	states := []MoistAirState{
		PropertiesFromTbsUR(25.0, 50.0, 101.325),
		PropertiesFromTbsUR(30.0, 60.0, 101.325),
	}

	buf := bytes.NewBuffer([]byte{})
	StatesToCSV(buf, states)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 3)
	assert.Equal(t, lines[0], "tbs,tbm,ur,w,tpo,h,v,p_v,p_ws,p_atm")
	assert.True(t, strings.HasPrefix(lines[1], "25,"))
	assert.True(t, strings.HasPrefix(lines[2], "30,"))
	assert.Equal(t, strings.Count(lines[1], ","), 9)
}

func Test_Chart_ToCSV(t *testing.T) {
	c := NewChart(101.325, 0, 40, 5, []float64{20, 80})

	buf := bytes.NewBuffer([]byte{})
	c.ToCSV(buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 6)
	assert.Equal(t, lines[0], "tbs,p_ws,w_s,p_v_ur20,w_ur20,p_v_ur80,w_ur80")
	assert.True(t, strings.HasPrefix(lines[1], "0,"))
}

func Test_MoistAirState_ToText(t *testing.T) {
	s := PropertiesFromTbsUR(25.0, 50.0, 101.325)

	buf := bytes.NewBuffer([]byte{})
	s.ToText(buf)

	out := buf.String()
	assert.Contains(t, out, "Umidade Relativa: 50.00 %")
	assert.Contains(t, out, "Temperatura de Bulbo Seco: 25.00 °C")
	assert.Contains(t, out, "Pressão Atmosférica: 101.33 kPa")
	assert.Equal(t, len(strings.Split(strings.TrimRight(out, "\n"), "\n")), 10)
}
