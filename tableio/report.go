// Package tableio: per-sector result reports.
// WriteReport and ParseReport are inverses over the result table, so a
// saved run can be collected later without re-running the model.

package tableio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iimkit/iim/iim"
)

// bannerWidth is the rule width of the report header and separator.
const bannerWidth = 90

// reportTitle follows the mode tag in the report banner.
const reportTitle = "Inoperability Input-Output Model for Interdependent Infrastructure Sectors"

// ReportRow is one sector's line in the result table, in column order.
type ReportRow struct {
	Sector            string
	Inoperability     float64
	Dependency        float64
	OverallDependency float64
	Influence         float64
	OverallInfluence  float64
}

// reportLine matches a result row: a sector name followed by five
// fixed-point numbers. Banner, header and separator lines do not match.
var reportLine = regexp.MustCompile(
	`^(\S+)\s+(\d+\.\d+)\s+(\d+\.\d+)\s+(\d+\.\d+)\s+(\d+\.\d+)\s+(\d+\.\d+)\s*$`)

// WriteReport renders the full run report: banner, perturbed-sector
// list and the aligned five-column result table.
func WriteReport(w io.Writer, mode iim.Mode, perts []iim.Perturbation, rows []ReportRow) error {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s-Driven %s\n", mode, reportTitle)
	fmt.Fprintln(w, rule)
	for _, p := range perts {
		fmt.Fprintf(w, "Perturbed sector: %s (%.2f)\n", p.Sector, p.Fraction)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 8, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "Sector\tInoperability\tDependency\tD(overall)\tInfluence\tI(overall)")
	// One dash run per column; a single wide rule would stretch the
	// first column to its full width under tabwriter alignment.
	fmt.Fprintln(tw, "------\t-------------\t----------\t----------\t---------\t----------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%8.6f\t%8.6f\t%8.6f\t%8.6f\t%8.6f\n",
			r.Sector, r.Inoperability, r.Dependency, r.OverallDependency,
			r.Influence, r.OverallInfluence)
	}

	return tw.Flush()
}

// ParseReport scans a saved report and returns its result rows,
// skipping banner and header lines. A report with no matching rows is
// an ErrBadReport.
func ParseReport(r io.Reader) ([]ReportRow, error) {
	var rows []ReportRow
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m := reportLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		row := ReportRow{Sector: m[1]}
		// Fields matched \d+\.\d+; ParseFloat cannot fail here.
		row.Inoperability, _ = strconv.ParseFloat(m[2], 64)
		row.Dependency, _ = strconv.ParseFloat(m[3], 64)
		row.OverallDependency, _ = strconv.ParseFloat(m[4], 64)
		row.Influence, _ = strconv.ParseFloat(m[5], 64)
		row.OverallInfluence, _ = strconv.ParseFloat(m[6], 64)
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseReport: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ParseReport: no result rows: %w", ErrBadReport)
	}

	return rows, nil
}

// ReadReport loads and parses a saved report file.
func ReadReport(path string) ([]ReportRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadReport: %w", err)
	}
	defer f.Close()

	rows, err := ParseReport(f)
	if err != nil {
		return nil, fmt.Errorf("ReadReport: %s: %w", path, err)
	}

	return rows, nil
}

// RunSet merges several saved runs of the same economy: the shared
// sectors and index columns come from the last run read (they are
// invariant across perturbation scenarios), the inoperability column
// varies per run.
type RunSet struct {
	Runs          []string    // run labels, from the manifest header
	Rows          []ReportRow // index columns, shared across runs
	Inoperability [][]float64 // [run][sector]
}

// CollectRuns reads a manifest — a header line of run labels followed
// by one report filename per line — and merges the named reports.
// Relative report paths resolve against the process working directory,
// matching how the run command writes them.
//
// Errors: ErrBadReport via ReadReport; a sector-count mismatch between
// runs is also an ErrBadReport, since the merged table would be ragged.
func CollectRuns(manifestPath string) (*RunSet, error) {
	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("CollectRuns: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("CollectRuns: %s: empty manifest: %w", manifestPath, ErrBadReport)
	}
	rs := &RunSet{Runs: strings.Fields(sc.Text())}

	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		rows, rerr := ReadReport(name)
		if rerr != nil {
			return nil, fmt.Errorf("CollectRuns: %w", rerr)
		}
		if rs.Rows != nil && len(rows) != len(rs.Rows) {
			return nil, fmt.Errorf("CollectRuns: %s has %d sectors, want %d: %w",
				name, len(rows), len(rs.Rows), ErrBadReport)
		}
		q := make([]float64, len(rows))
		for i, row := range rows {
			q[i] = row.Inoperability
		}
		rs.Rows = rows
		rs.Inoperability = append(rs.Inoperability, q)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("CollectRuns: %w", err)
	}
	if len(rs.Inoperability) == 0 {
		return nil, fmt.Errorf("CollectRuns: %s lists no reports: %w", manifestPath, ErrBadReport)
	}

	return rs, nil
}

// WriteCSV renders the merged run set: the shared index columns first,
// then one inoperability column per run.
func (rs *RunSet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Sector", "delta", "delta_overall", "rho", "rho_overall"}
	header = append(header, rs.Runs...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	for i, row := range rs.Rows {
		record := []string{
			row.Sector,
			formatCell(row.Dependency),
			formatCell(row.OverallDependency),
			formatCell(row.Influence),
			formatCell(row.OverallInfluence),
		}
		for j := range rs.Inoperability {
			record = append(record, formatCell(rs.Inoperability[j][i]))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// formatCell renders a result value with the report's fixed precision.
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
