package tabular

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilomatrix/racklabel/pkg/errors"
)

// Load reads spreadsheet bytes from r and parses them according to the
// extension of filename (.xlsx, .xlsm, .xls or .csv). The whole input is
// buffered in memory; uploads are bounded by the callers.
func Load(r io.Reader, filename string) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, errors.Wrap(errors.ErrCodeLoadFailed, err, "read %s", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return loadCSV(data)
	case ".xlsx", ".xlsm":
		return loadXLSX(data)
	case ".xls":
		return loadXLS(data)
	default:
		return Table{}, errors.New(errors.ErrCodeUnsupportedFile,
			"unsupported file type %q (expected .xlsx, .xls or .csv)", filepath.Ext(filename))
	}
}

// LoadFile opens and parses a spreadsheet file from disk.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Table{}, errors.Wrap(errors.ErrCodeLoadFailed, err, "open %s", path)
	}
	defer f.Close()
	return Load(f, path)
}
