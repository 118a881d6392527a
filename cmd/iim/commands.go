package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	tableFile    string   // -f: CSV input-output table
	perturbed    []string // -s: perturbed sector names, repeatable
	fractions    []string // -c: perturbation fractions, repeatable
	tableForm    string   // -t: "IO" or "A"
	runMode      string   // -m: "Demand" or "Supply"
	scenarioFile string   // --scenario: YAML alternative to the flags above
	nthOrder     int      // -n: interdependency order

	rootCmd = &cobra.Command{
		Use:   "iim",
		Short: "Inoperability Input-Output Model for interdependent infrastructure sectors",
		Long: `iim computes steady-state inoperability, dependency and influence
indices for interdependent infrastructure sectors from an industry-by-industry
input-output table or a pre-built interdependency matrix.`,
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the model and print the per-sector report",
		RunE:  runModel, // Defined in cmd_run.go
	}

	nthOrderCmd = &cobra.Command{
		Use:   "nth-order",
		Short: "Write the strongest n-th order interdependency per sector to CSV",
		RunE:  runNthOrder, // Defined in cmd_nthorder.go
	}

	collectCmd = &cobra.Command{
		Use:   "collect",
		Short: "Merge saved run reports into a single CSV",
		RunE:  runCollect, // Defined in cmd_collect.go
	}
)

func init() {
	runCmd.Flags().StringVarP(&tableFile, "file", "f", "", "name of CSV file")
	runCmd.Flags().StringArrayVarP(&perturbed, "sector", "s", nil, "name of perturbed sector (repeatable)")
	runCmd.Flags().StringArrayVarP(&fractions, "cvalue", "c", nil, "fraction of perturbation [0-1] (repeatable)")
	runCmd.Flags().StringVarP(&tableForm, "table", "t", "IO", "type of input-output table (IO or A)")
	runCmd.Flags().StringVarP(&runMode, "mode", "m", "Demand", "calculation mode (Demand or Supply)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (replaces the flags above)")

	nthOrderCmd.Flags().StringVarP(&tableFile, "file", "f", "", "name of CSV file")
	nthOrderCmd.Flags().IntVarP(&nthOrder, "order", "n", 1, "n-th order interdependency")
	nthOrderCmd.Flags().StringVarP(&tableForm, "table", "t", "IO", "type of input-output table (IO or A)")
	nthOrderCmd.Flags().StringVarP(&runMode, "mode", "m", "Demand", "calculation mode (Demand or Supply)")
	_ = nthOrderCmd.MarkFlagRequired("file")

	collectCmd.Flags().StringVarP(&tableFile, "file", "f", "", "manifest of saved run reports")
	_ = collectCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(runCmd, nthOrderCmd, collectCmd)
}
