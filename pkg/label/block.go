package label

import (
	"github.com/agilomatrix/racklabel/pkg/render"
)

// locationLabel is the fixed caption of the location strip's first cell.
const locationLabel = "Part Location"

// Block is one printable label unit: the part table(s) plus the
// color-coded location strip, expressed as render instructions.
type Block struct {
	Elements []render.Element
}

// BuildBlock assembles one label block from a location group's records and
// its parsed location fields.
//
// VariantMulti takes up to the first two records; a lone record fills both
// part rows. VariantSingle takes only the first record. A group with no
// records yields nil - no block is ever emitted for it. Records that made
// it this far are already best-effort strings, so data content never fails
// the build; only an unusable style configuration does.
func BuildBlock(records []PartRecord, loc LocationFields, st StyleSet, v Variant) (*Block, error) {
	if len(records) == 0 {
		return nil, nil
	}
	if err := validateStyles(st); err != nil {
		return nil, err
	}

	b := &Block{}
	switch v {
	case VariantSingle:
		b.addTable(partTable(records[0], st, v))
		b.addSpacer(st.Layout.BlockGap)
	default:
		first, second := records[0], records[0]
		if len(records) > 1 {
			second = records[1]
		}
		b.addTable(partTable(first, st, v))
		b.addSpacer(st.Layout.BlockGap)
		b.addTable(partTable(second, st, v))
	}
	b.addTable(locationStrip(loc, st.Layout))
	b.addSpacer(st.Layout.TrailingGap)
	return b, nil
}

func (b *Block) addTable(t render.Table) {
	b.Elements = append(b.Elements, render.Element{Table: &t})
}

func (b *Block) addSpacer(h float64) {
	b.Elements = append(b.Elements, render.Element{Spacer: &render.Spacer{Height: h}})
}

// partTable builds the two-row sub-table for one record: a part number
// row and a description row, each with a fixed-width label cell.
func partTable(rec PartRecord, st StyleSet, v Variant) render.Table {
	l := st.Layout

	partAlign := render.AlignLeft
	partVAlign := render.VAlignMiddle
	if v == VariantSingle {
		// The large dual-size part number sits centered at the top of
		// its taller cell.
		partAlign = render.AlignCenter
		partVAlign = render.VAlignTop
	}

	return render.Table{
		ColWidths:  []float64{l.LabelColWidth, l.BodyWidth},
		RowHeights: []float64{l.PartRowHeight, l.DescRowHeight},
		Rows: [][]render.Cell{
			{
				labelCell("Part No", l.LabelFontSize),
				{
					Spans:  FormatPartNumber(rec.PartNumber, st.PartNumber),
					Align:  partAlign,
					VAlign: partVAlign,
				},
			},
			{
				labelCell("Description", l.LabelFontSize),
				{
					Spans:  []render.Span{FormatDescription(rec.Description, st.Description)},
					Align:  render.AlignLeft,
					VAlign: render.VAlignMiddle,
					Wrap:   st.Description.FixedSize > 0,
				},
			},
		},
	}
}

// locationStrip builds the single-row location table: the fixed caption
// cell followed by the seven positional field cells, each with its fixed
// background color from the palette - colored regardless of content, so
// empty fields still show their slot.
func locationStrip(loc LocationFields, l LayoutStyle) render.Table {
	widths := make([]float64, 0, FieldCount+1)
	widths = append(widths, l.LabelColWidth)
	for _, w := range l.locationWidths() {
		widths = append(widths, w)
	}

	colors := l.locationColors()
	cells := make([]render.Cell, 0, FieldCount+1)
	caption := labelCell(locationLabel, l.LabelFontSize)
	caption.VAlign = render.VAlignTop
	cells = append(cells, caption)
	for i, field := range loc {
		fill := colors[i]
		cells = append(cells, render.Cell{
			Spans:  []render.Span{{Text: field, Size: l.LocationFontSize}},
			Align:  render.AlignCenter,
			VAlign: render.VAlignTop,
			Fill:   &fill,
		})
	}

	return render.Table{
		ColWidths:  widths,
		RowHeights: []float64{l.LocationRowHeight},
		Rows:       [][]render.Cell{cells},
	}
}

// labelCell builds a fixed caption cell ("Part No", "Description", ...).
func labelCell(text string, size float64) render.Cell {
	return render.Cell{
		Spans:  []render.Span{{Text: text, Size: size}},
		Align:  render.AlignCenter,
		VAlign: render.VAlignMiddle,
	}
}
