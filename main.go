// PsychroCalc
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/psicalc/psychro-go/psychro"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// Command line arguments / argumentos de linha de comando
	parser := argparse.NewParser("PsychroCalc", "Calculates thermodynamic properties of humid air / Calcula as propriedades termodinâmicas do ar úmido")

	tbs := parser.FloatPositional(&argparse.Options{
		Default: 25.0,
		Help:    "Dry-bulb temperature / Temperatura de bulbo seco [°C]"})

	value := parser.FloatPositional(&argparse.Options{
		Default: 50.0,
		Help:    "Second property, per --method: wet-bulb [°C], relative humidity [%] or dew point [°C]"})

	method := parser.Selector("m", "method", []string{"ur", "tbm", "tpo"}, &argparse.Options{
		Default: "ur",
		Help:    "Known input pair: dry-bulb + relative humidity=ur (default), + wet-bulb=tbm, + dew point=tpo"})

	altitude := parser.Float("a", "altitude", &argparse.Options{
		Default: 0.0,
		Help:    "Altitude [m] for the barometric pressure estimate"})

	pressure := parser.Float("p", "pressure", &argparse.Options{
		Default: 0.0,
		Help:    "Atmospheric pressure [kPa]; overrides --altitude when > 0"})

	profile := parser.String("", "profile", &argparse.Options{
		Default: "",
		Help:    "YAML profile file; resolves every profile to a CSV table"})

	chart := parser.Flag("c", "chart", &argparse.Options{
		Help: "Output psychrometric chart curves as CSV instead of a single state"})

	tMin := parser.Float("", "t_min", &argparse.Options{
		Default: -10.0,
		Help:    "Chart temperature axis start [°C]"})

	tMax := parser.Float("", "t_max", &argparse.Options{
		Default: 50.0,
		Help:    "Chart temperature axis end [°C]"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (default: stdout)"})

	format := parser.Selector("f", "file", []string{"TXT", "CSV"}, &argparse.Options{
		Default: "TXT",
		Help:    "Single-state output format TXT or CSV"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "INFO",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
	}

	// Log level / nível de log
	logger := logging.GetLogger("psychro")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	patm := *pressure
	if patm <= 0 {
		patm = psychro.AtmosphericPressure(*altitude)
		logger.Debugf("estimated pressure at %.0f m: %.3f kPa", *altitude, patm)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})

	if *profile != "" {
		profiles, err := psychro.LoadProfiles(*profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		states := make([]psychro.MoistAirState, 0, len(profiles))
		for _, p := range profiles {
			state, err := p.Resolve()
			if err != nil {
				logger.Warnf("%s", err)
				continue
			}
			states = append(states, state)
		}
		psychro.StatesToCSV(buf, states)
	} else if *chart {
		psychro.NewChart(patm, *tMin, *tMax, 200, psychro.DefaultRHLevels).ToCSV(buf)
	} else {
		var state psychro.MoistAirState
		switch *method {
		case "tbm":
			if *value > *tbs {
				logger.Warnf("wet-bulb %.2f°C above dry-bulb %.2f°C; result will be physically inconsistent", *value, *tbs)
			}
			state = psychro.PropertiesFromTbsTbm(*tbs, *value, patm)
		case "ur":
			state = psychro.PropertiesFromTbsUR(*tbs, *value, patm)
		case "tpo":
			if *value > *tbs {
				logger.Warnf("dew point %.2f°C above dry-bulb %.2f°C; result will be physically inconsistent", *value, *tbs)
			}
			state = psychro.PropertiesFromTbsTpo(*tbs, *value, patm)
		}

		if *format == "CSV" {
			psychro.StatesToCSV(buf, []psychro.MoistAirState{state})
		} else {
			state.ToText(buf)
		}
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("saving: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}
