package tabular

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/agilomatrix/racklabel/pkg/errors"
)

// loadXLSX parses an Office Open XML workbook. Only the first sheet is
// read; excelize already stringifies cell values for us.
func loadXLSX(data []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeLoadFailed, err, "open xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New(errors.ErrCodeLoadFailed, "workbook has no sheets")
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeLoadFailed, err, "read sheet %s", sheets[0])
	}
	return fromRows(grid), nil
}
