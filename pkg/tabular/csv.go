package tabular

import (
	"bytes"
	"encoding/csv"

	"github.com/agilomatrix/racklabel/pkg/errors"
)

// loadCSV parses CSV bytes. Ragged rows are tolerated; fromRows pads or
// ignores them as needed.
func loadCSV(data []byte) (Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	grid, err := r.ReadAll()
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeLoadFailed, err, "parse csv")
	}
	return fromRows(grid), nil
}
