package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iimkit/iim/iim"
	"github.com/iimkit/iim/tableio"
)

// runNthOrder extracts, for every sector, its strongest n-th order
// interdependency partner and writes the triples to
// <input-stem>_<n>-order_dep.csv in the working directory.
func runNthOrder(cmd *cobra.Command, _ []string) error {
	form, err := iim.ParseTableForm(tableForm)
	if err != nil {
		return err
	}
	mode, err := iim.ParseMode(runMode)
	if err != nil {
		return err
	}

	model, err := buildModel(&tableio.Scenario{
		TablePath: tableFile,
		Form:      form,
		Mode:      mode,
	})
	if err != nil {
		return err
	}

	maxes, err := model.MaxNthOrderInterdependency(nthOrder)
	if err != nil {
		return err
	}

	outName := fmt.Sprintf("%s_%d-order_dep.csv", fileStem(tableFile), nthOrder)
	f, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"i", "j", fmt.Sprintf("max(aj^%d)", nthOrder)}); err != nil {
		return err
	}
	for _, m := range maxes {
		record := []string{m.SectorI, m.SectorJ, strconv.FormatFloat(m.Value, 'g', -1, 64)}
		if err = w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outName)

	return nil
}

// fileStem strips the directory and extension from a path.
func fileStem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
