package sink

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/render"
)

// PDF layout constants, in centimeters unless noted.
const (
	topMargin = 2.0
	cellPadX  = 0.15

	// ptToCm converts font sizes (points) to physical height.
	ptToCm = 2.54 / 72

	// capRatio approximates the cap height of Helvetica relative to the
	// font size, used for vertical centering without font metrics.
	capRatio = 0.7

	// lineSpacing is the multi-line leading factor for wrapped text.
	lineSpacing = 1.25

	fontFamily = "Helvetica"
)

// RenderPDF serializes a document description into a paginated A4 PDF.
// Every page in the document becomes one physical page; tables are drawn
// horizontally centered with a full grid, per-cell fills and the exact
// font directives the layout engine selected.
func RenderPDF(doc *render.Document) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeNoLabels, "document has no pages")
	}

	pdf := fpdf.New("P", "cm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.03)

	for _, page := range doc.Pages {
		pdf.AddPage()
		y := topMargin
		for _, el := range page.Elements {
			switch {
			case el.Spacer != nil:
				y += el.Spacer.Height
			case el.Table != nil:
				drawTable(pdf, doc, *el.Table, y)
				y += el.Table.Height()
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}

// drawTable draws one gridded table horizontally centered at vertical
// offset y.
func drawTable(pdf *fpdf.Fpdf, doc *render.Document, t render.Table, y float64) {
	x0 := (doc.PageWidth - t.Width()) / 2

	cy := y
	for ri, row := range t.Rows {
		rh := rowHeight(t, ri)
		cx := x0
		for ci, cell := range row {
			if ci >= len(t.ColWidths) {
				break
			}
			cw := t.ColWidths[ci]
			drawCell(pdf, cell, cx, cy, cw, rh)
			cx += cw
		}
		cy += rh
	}
}

func rowHeight(t render.Table, ri int) float64 {
	if ri < len(t.RowHeights) {
		return t.RowHeights[ri]
	}
	if len(t.RowHeights) > 0 {
		return t.RowHeights[len(t.RowHeights)-1]
	}
	return 0
}

// drawCell paints the cell background and border, then its text spans.
func drawCell(pdf *fpdf.Fpdf, cell render.Cell, x, y, w, h float64) {
	if cell.Fill != nil {
		pdf.SetFillColor(int(cell.Fill.R), int(cell.Fill.G), int(cell.Fill.B))
		pdf.Rect(x, y, w, h, "FD")
	} else {
		pdf.Rect(x, y, w, h, "D")
	}

	if len(cell.Spans) == 0 {
		return
	}
	if cell.Wrap {
		drawWrapped(pdf, cell, x, y, w, h)
		return
	}
	drawSpans(pdf, cell, x, y, w, h)
}

// drawSpans renders the cell's spans on a single shared baseline. Spans
// of different sizes (the dual-size part number) align on the baseline of
// the largest span.
func drawSpans(pdf *fpdf.Fpdf, cell render.Cell, x, y, w, h float64) {
	var total, maxSize float64
	for _, s := range cell.Spans {
		pdf.SetFont(fontFamily, fontStyle(s), s.Size)
		total += pdf.GetStringWidth(s.Text)
		if s.Size > maxSize {
			maxSize = s.Size
		}
	}

	tx := x + cellPadX
	if cell.Align == render.AlignCenter {
		if free := w - total; free > 2*cellPadX {
			tx = x + free/2
		}
	}

	capH := maxSize * ptToCm * capRatio
	var baseline float64
	switch cell.VAlign {
	case render.VAlignTop:
		baseline = y + 0.1 + capH
	default: // middle
		baseline = y + (h+capH)/2
	}

	for _, s := range cell.Spans {
		pdf.SetFont(fontFamily, fontStyle(s), s.Size)
		pdf.Text(tx, baseline, s.Text)
		tx += pdf.GetStringWidth(s.Text)
	}
}

// drawWrapped renders a single span with line wrapping inside the cell.
func drawWrapped(pdf *fpdf.Fpdf, cell render.Cell, x, y, w, h float64) {
	s := cell.Spans[0]
	pdf.SetFont(fontFamily, fontStyle(s), s.Size)

	lineH := s.Size * ptToCm * lineSpacing
	align := "L"
	if cell.Align == render.AlignCenter {
		align = "C"
	}

	pdf.SetXY(x+cellPadX, y+0.1)
	pdf.MultiCell(w-2*cellPadX, lineH, s.Text, "", align, false)
}

func fontStyle(s render.Span) string {
	if s.Bold {
		return "B"
	}
	return ""
}
