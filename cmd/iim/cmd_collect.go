package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iimkit/iim/tableio"
)

// runCollect merges the saved run reports named by a manifest into one
// CSV, <manifest-stem>.csv, with an inoperability column per run.
func runCollect(cmd *cobra.Command, _ []string) error {
	rs, err := tableio.CollectRuns(tableFile)
	if err != nil {
		return err
	}

	outName := fileStem(tableFile) + ".csv"
	f, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = rs.WriteCSV(f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outName)

	return nil
}
