// Package export renders standardization results as CSV, XLSX, or a grouped
// text report.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/standardize-cli/internal/batch"
	"github.com/sells-group/standardize-cli/internal/model"
)

// WriteCSV writes records as a two-column CSV file
// (Input Firm Name, Standardized Firm Name).
func WriteCSV(records []model.Record, path string) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return eris.Wrap(err, "export: marshal csv")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// WriteXLSX writes records as a single-sheet XLSX workbook with the same
// two-column layout as the CSV export.
func WriteXLSX(records []model.Record, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Standardized")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	header.AddCell().SetString("Input Firm Name")
	header.AddCell().SetString("Standardized Firm Name")

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Input)
		row.AddCell().SetString(r.Standardized)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// WriteRecords dispatches on the output extension: .csv or .xlsx.
func WriteRecords(records []model.Record, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(records, path)
	case ".xlsx":
		return WriteXLSX(records, path)
	default:
		return eris.Errorf("export: unsupported output type %q", filepath.Ext(path))
	}
}

// WriteGroupReport renders groups as an indented text summary. Each group
// shows at most displayCap variants and reports how many were omitted; the
// cap affects this report only, never the exported records.
func WriteGroupReport(w io.Writer, groups []model.Group, displayCap int) error {
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", g.Label, len(g.Variants)); err != nil {
			return eris.Wrap(err, "export: write report")
		}
		shown, omitted := batch.CapVariants(g, displayCap)
		for _, v := range shown {
			if _, err := fmt.Fprintf(w, "  %s\n", v); err != nil {
				return eris.Wrap(err, "export: write report")
			}
		}
		if omitted > 0 {
			if _, err := fmt.Fprintf(w, "  ... and %d more\n", omitted); err != nil {
				return eris.Wrap(err, "export: write report")
			}
		}
	}
	return nil
}
