package label

import "strings"

// Columns identifies which input columns hold the three label fields.
// The values are the original column names as they appear in the source,
// usable directly as row keys.
type Columns struct {
	PartNumber  string
	Description string
	Location    string
}

// ResolveColumns infers the part number, description and location columns
// from a set of column names. Matching is case-insensitive (names are
// upper-cased before comparison); first match wins. When no keyword
// matches, resolution falls back to column position. Degenerate results
// (several roles resolving to the same column) are accepted, not errors.
func ResolveColumns(names []string) Columns {
	if len(names) == 0 {
		return Columns{}
	}

	upper := make([]string, len(names))
	for i, n := range names {
		upper[i] = strings.ToUpper(n)
	}

	var cols Columns

	// Part number: "PART" plus a number-ish hint, then exact forms,
	// then the first column.
	for i, u := range upper {
		if strings.Contains(u, "PART") &&
			(strings.Contains(u, "NO") || strings.Contains(u, "NUM") || strings.Contains(u, "#")) {
			cols.PartNumber = names[i]
			break
		}
	}
	if cols.PartNumber == "" {
		for i, u := range upper {
			if u == "PARTNO" || u == "PART" {
				cols.PartNumber = names[i]
				break
			}
		}
	}
	if cols.PartNumber == "" {
		cols.PartNumber = names[0]
	}

	// Description: "DESC", then the second column, then the part column.
	for i, u := range upper {
		if strings.Contains(u, "DESC") {
			cols.Description = names[i]
			break
		}
	}
	if cols.Description == "" {
		if len(names) > 1 {
			cols.Description = names[1]
		} else {
			cols.Description = cols.PartNumber
		}
	}

	// Location: "LOC" or "POS", then the third column, then the
	// description column.
	for i, u := range upper {
		if strings.Contains(u, "LOC") || strings.Contains(u, "POS") {
			cols.Location = names[i]
			break
		}
	}
	if cols.Location == "" {
		if len(names) > 2 {
			cols.Location = names[2]
		} else {
			cols.Location = cols.Description
		}
	}

	return cols
}
