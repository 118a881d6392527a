package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iimkit/iim/iim"
	"github.com/iimkit/iim/tableio"
)

// runModel executes one model run and prints the per-sector report.
// The scenario comes either from a YAML file (--scenario) or from the
// individual flags; the YAML form wins when both are given.
func runModel(cmd *cobra.Command, _ []string) error {
	sc, err := resolveScenario()
	if err != nil {
		return err
	}

	model, err := buildModel(sc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sc.Mode == iim.Supply {
		// Dependency/influence indices are undefined in the
		// supply-driven model; report inoperability alone.
		fmt.Fprintln(out, "Supply-Driven mode: only inoperability is reported.")
		for i, q := range model.Inoperability() {
			fmt.Fprintf(out, "q(%s) = %8.6f\n", model.Sectors()[i], q)
		}

		return nil
	}

	rows := make([]tableio.ReportRow, 0, model.Len())
	for _, sector := range model.Sectors() {
		report, gerr := model.Get(sector)
		if gerr != nil {
			return gerr
		}
		rows = append(rows, tableio.ReportRow{
			Sector:            sector,
			Inoperability:     report.Inoperability,
			Dependency:        report.Dependency,
			OverallDependency: report.OverallDependency,
			Influence:         report.Influence,
			OverallInfluence:  report.OverallInfluence,
		})
	}

	return tableio.WriteReport(out, sc.Mode, sc.Perturbations, rows)
}

// resolveScenario assembles the run description from --scenario or the
// flag set.
func resolveScenario() (*tableio.Scenario, error) {
	if scenarioFile != "" {
		return tableio.LoadScenario(scenarioFile)
	}
	if tableFile == "" {
		return nil, fmt.Errorf("either --file or --scenario is required")
	}

	form, err := iim.ParseTableForm(tableForm)
	if err != nil {
		return nil, err
	}
	mode, err := iim.ParseMode(runMode)
	if err != nil {
		return nil, err
	}
	perts, err := zipFlagPerturbations()
	if err != nil {
		return nil, err
	}

	return &tableio.Scenario{
		TablePath:     tableFile,
		Form:          form,
		Mode:          mode,
		Perturbations: perts,
	}, nil
}

// zipFlagPerturbations pairs the repeatable -s and -c flags.
func zipFlagPerturbations() ([]iim.Perturbation, error) {
	values := make([]float64, len(fractions))
	for i, s := range fractions {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("cvalue %q is not a floating-point literal", s)
		}
		values[i] = v
	}

	return iim.ZipPerturbations(perturbed, values)
}

// buildModel reads the table named by the scenario and constructs the
// model.
func buildModel(sc *tableio.Scenario) (*iim.Model, error) {
	table, err := tableio.ReadCSV(sc.TablePath)
	if err != nil {
		return nil, err
	}
	mat, err := table.Matrix()
	if err != nil {
		return nil, err
	}

	return iim.New(table.Sectors, mat, sc.Form, sc.Mode, sc.Perturbations)
}
