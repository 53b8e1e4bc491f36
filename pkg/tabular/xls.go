package tabular

import (
	"bytes"

	"github.com/extrame/xls"

	"github.com/agilomatrix/racklabel/pkg/errors"
)

// loadXLS parses a legacy BIFF workbook. Only the first sheet is read.
// Cell values come back already stringified by the reader.
func loadXLS(data []byte) (Table, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeLoadFailed, err, "open xls")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Table{}, errors.New(errors.ErrCodeLoadFailed, "workbook has no sheets")
	}

	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		var cells []string
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		grid = append(grid, cells)
	}
	return fromRows(grid), nil
}
