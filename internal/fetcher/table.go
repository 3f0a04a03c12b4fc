package fetcher

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Table is a parsed tabular file: an ordered column list plus one
// column-name→value map per row.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn reports whether the table defines the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ReadTable parses a CSV or XLSX file by extension.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVTable(path)
	case ".xlsx":
		return ReadXLSXTable(path, XLSXOptions{})
	default:
		return nil, eris.Errorf("table: unsupported file type %q", filepath.Ext(path))
	}
}

// rowsToMaps zips header columns with row cells. Short rows leave the
// trailing columns empty; extra cells beyond the header are dropped.
func rowsToMaps(columns []string, rows [][]string) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, cells := range rows {
		m := make(map[string]string, len(columns))
		for j, col := range columns {
			if j < len(cells) {
				m[col] = cells[j]
			} else {
				m[col] = ""
			}
		}
		out[i] = m
	}
	return out
}
