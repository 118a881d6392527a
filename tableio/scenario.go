// Package tableio: YAML scenario files.
// A scenario pins everything a run needs — table path, input form,
// computation mode, perturbations — so results are reproducible from a
// single file instead of a remembered flag set.

package tableio

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iimkit/iim/iim"
)

// Scenario is a fully resolved run description: selector tags parsed,
// table path made absolute against the scenario file's directory.
type Scenario struct {
	TablePath     string
	Form          iim.TableForm
	Mode          iim.Mode
	Perturbations []iim.Perturbation
}

// scenarioYAML is the on-disk shape; tags default to "IO" / "Demand"
// when omitted, matching the command-line defaults.
type scenarioYAML struct {
	Table         string `yaml:"table"`
	Form          string `yaml:"form,omitempty"`
	Mode          string `yaml:"mode,omitempty"`
	Perturbations []struct {
		Sector   string  `yaml:"sector"`
		Fraction float64 `yaml:"fraction"`
	} `yaml:"perturbations,omitempty"`
}

// LoadScenario reads and parses a scenario file. A relative table path
// is resolved against the scenario file's directory, so a scenario can
// sit next to its table and be invoked from anywhere.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadScenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("LoadScenario: %s: %w", path, err)
	}
	if !filepath.IsAbs(sc.TablePath) {
		sc.TablePath = filepath.Join(filepath.Dir(path), sc.TablePath)
	}

	return sc, nil
}

// ParseScenario parses and validates a scenario from YAML bytes.
// Errors: ErrBadScenario for a missing table path or an unknown form or
// mode tag; yaml errors pass through wrapped.
func ParseScenario(data []byte) (*Scenario, error) {
	var raw scenarioYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ParseScenario: %w", err)
	}

	if raw.Table == "" {
		return nil, fmt.Errorf("ParseScenario: missing table path: %w", ErrBadScenario)
	}
	if raw.Form == "" {
		raw.Form = iim.RawTable.String()
	}
	if raw.Mode == "" {
		raw.Mode = iim.Demand.String()
	}

	form, err := iim.ParseTableForm(raw.Form)
	if err != nil {
		return nil, fmt.Errorf("ParseScenario: form %q: %w", raw.Form, ErrBadScenario)
	}
	mode, err := iim.ParseMode(raw.Mode)
	if err != nil {
		return nil, fmt.Errorf("ParseScenario: mode %q: %w", raw.Mode, ErrBadScenario)
	}

	sc := &Scenario{TablePath: raw.Table, Form: form, Mode: mode}
	for _, p := range raw.Perturbations {
		// Fraction bounds are the model constructor's concern; the
		// scenario layer only checks structure.
		sc.Perturbations = append(sc.Perturbations, iim.Perturbation{
			Sector:   p.Sector,
			Fraction: p.Fraction,
		})
	}

	return sc, nil
}
