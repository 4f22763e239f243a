package psychro

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Named input profiles, the file counterpart of the calculator's saved
// profiles. Only the inputs are stored; states are always recomputed.

// Profile is one named set of engine inputs.
type Profile struct {
	Name     string  `yaml:"name"`
	Method   string  `yaml:"method"`   // "tbm", "ur" or "tpo"
	TBS      float64 `yaml:"tbs"`      // dry-bulb temperature [°C]
	Value    float64 `yaml:"value"`    // wet-bulb [°C], relative humidity [%] or dew point [°C], per Method
	Altitude float64 `yaml:"altitude"` // altitude [m], used when Patm is zero
	Patm     float64 `yaml:"patm"`     // atmospheric pressure [kPa], overrides Altitude when > 0
}

// Pressure returns the atmospheric pressure of the profile: Patm when
// given, otherwise the barometric estimate for Altitude.
func (p Profile) Pressure() float64 {
	if p.Patm > 0 {
		return p.Patm
	}
	return AtmosphericPressure(p.Altitude)
}

// Resolve computes the moist air state for the profile inputs. The only
// rejected input is an unknown method; everything else resolves
// fail-soft like the direct entry points.
func (p Profile) Resolve() (MoistAirState, error) {
	patm := p.Pressure()
	switch p.Method {
	case "tbm":
		return PropertiesFromTbsTbm(p.TBS, p.Value, patm), nil
	case "ur":
		return PropertiesFromTbsUR(p.TBS, p.Value, patm), nil
	case "tpo":
		return PropertiesFromTbsTpo(p.TBS, p.Value, patm), nil
	}
	return MoistAirState{}, fmt.Errorf("profile %q: unknown method %q", p.Name, p.Method)
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads a YAML profile file.
//
// Format:
//
//	profiles:
//	  - name: escritório
//	    method: ur
//	    tbs: 25.0
//	    value: 50.0
//	    altitude: 760
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Profiles, nil
}
