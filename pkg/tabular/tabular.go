// Package tabular loads loosely-structured spreadsheet data into an
// ordered row/column model.
//
// Supported formats are .xlsx (excelize), legacy .xls (extrame/xls) and
// .csv (stdlib). All cell values are stringified best-effort at load time;
// the loaders never reject a file for malformed data, only for unreadable
// bytes. Column names are used verbatim - any matching semantics (such as
// case-insensitive role inference) belong to the consumer.
package tabular

import (
	"fmt"
	"strings"
)

// Row maps column names to stringified cell values.
type Row map[string]string

// Table is an ordered collection of rows plus the column names in their
// original order.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// fromRows converts a raw cell grid into a Table. The first row supplies
// the column names; duplicate names get a ".1", ".2", ... suffix so no
// column shadows another, short data rows are padded with empty strings
// and rows that are entirely blank are dropped.
func fromRows(grid [][]string) Table {
	if len(grid) == 0 {
		return Table{}
	}

	columns := make([]string, len(grid[0]))
	seen := make(map[string]int, len(grid[0]))
	for i, name := range grid[0] {
		name = strings.TrimSpace(name)
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		columns[i] = name
	}

	t := Table{Columns: columns}
	for _, raw := range grid[1:] {
		if blankRow(raw) {
			continue
		}
		row := make(Row, len(columns))
		for i, name := range columns {
			if i < len(raw) {
				row[name] = raw[i]
			} else {
				row[name] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
