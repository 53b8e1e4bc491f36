package label

import (
	"github.com/agilomatrix/racklabel/pkg/render"
	"github.com/agilomatrix/racklabel/pkg/tabular"
)

// Progress is invoked synchronously before each location group is
// processed. Implementations must return promptly; the callback has no
// effect on the processing outcome.
type Progress func(index, total int, location string)

// SkippedGroup records a location group that failed to build and was
// skipped. Skipped groups are simply absent from the document, never
// replaced with placeholder content.
type SkippedGroup struct {
	Location string
	Err      error
}

// BuildDocument runs the full layout engine over a table and returns the
// render-ready document.
//
// Columns are resolved once, rows are grouped by the exact raw value of
// the location column (first-appearance order, no normalization), and
// each group contributes at most one block. A group that fails to build
// is skipped and reported in the diagnostics; a single bad group never
// aborts the run. When no group yields a block - including the empty
// table - the document is nil with a nil error, leaving the caller to
// decide how to present "nothing generated".
func BuildDocument(t tabular.Table, v Variant, st StyleSet, progress Progress) (*render.Document, []SkippedGroup, error) {
	if err := ValidateVariant(v); err != nil {
		return nil, nil, err
	}
	if len(t.Rows) == 0 {
		return nil, nil, nil
	}

	cols := ResolveColumns(t.Columns)

	groups, order := groupByLocation(t, cols)
	pages := NewPaginator(BlocksPerPage)

	var skipped []SkippedGroup
	for i, location := range order {
		if progress != nil {
			progress(i, len(order), location)
		}

		block, err := BuildBlock(groups[location], ParseLocation(location), st, v)
		if err != nil {
			skipped = append(skipped, SkippedGroup{Location: location, Err: err})
			continue
		}
		pages.Add(block)
	}

	if pages.Blocks() == 0 {
		return nil, skipped, nil
	}

	doc := render.NewDocument()
	doc.Pages = pages.Pages()
	return doc, skipped, nil
}

// groupByLocation buckets rows by their raw location value, preserving
// the order locations first appear and the row order within each group.
func groupByLocation(t tabular.Table, cols Columns) (map[string][]PartRecord, []string) {
	groups := make(map[string][]PartRecord)
	var order []string

	for _, row := range t.Rows {
		location := row[cols.Location]
		if _, seen := groups[location]; !seen {
			order = append(order, location)
		}
		groups[location] = append(groups[location], PartRecord{
			PartNumber:  row[cols.PartNumber],
			Description: row[cols.Description],
			LocationRaw: location,
		})
	}
	return groups, order
}
