// Package tableio handles the file formats surrounding the model:
//
//   - 📄 CSV input-output tables — a header row of sector names followed
//     by numeric rows (N rows for a pre-built interdependency matrix,
//     N+1 with the trailing total-output row for a raw table).
//   - 🧾 YAML scenario files — table path, input form, computation mode
//     and the perturbation set, so a run is reproducible from one file.
//   - 📊 Plain-text reports — the per-sector result table written by the
//     command line, parsed back when collecting runs into one CSV.
//
// Parsing is strict: ragged rows, non-numeric cells, duplicate headers
// and unknown selector tags fail with wrapped sentinel errors rather
// than producing a partially read table.
package tableio
