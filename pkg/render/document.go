// Package render defines the render-ready document description produced by
// the label layout engine.
//
// A Document is an ordered sequence of Pages; each Page is an ordered list
// of render instructions (tables with per-cell text spans, fonts, sizes,
// alignment and background color, plus vertical spacers). All physical
// dimensions are in centimeters. The document model carries no rendering
// logic itself - sinks (see the sink subpackage) serialize it into output
// byte streams such as PDF or JSON.
package render

import "fmt"

// Page dimensions for ISO A4 portrait, in centimeters.
const (
	A4WidthCm  = 21.0
	A4HeightCm = 29.7
)

// Color is a 24-bit RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex parses a "#RRGGBB" color string. Invalid input yields black.
func Hex(s string) Color {
	var c Color
	if len(s) == 7 && s[0] == '#' {
		fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B)
	}
	return c
}

// Align is the horizontal alignment of a cell's content.
type Align string

// Horizontal alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// VAlign is the vertical alignment of a cell's content.
type VAlign string

// Vertical alignments.
const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
)

// Span is a run of text with uniform font settings. A cell may hold
// several spans rendered side by side on one line (used for the dual-size
// part number rendering).
type Span struct {
	Text string  `json:"text"`
	Size float64 `json:"size"` // font size in points
	Bold bool    `json:"bold,omitempty"`
}

// Cell is one table cell: its text spans plus presentation attributes.
type Cell struct {
	Spans  []Span `json:"spans,omitempty"`
	Align  Align  `json:"align,omitempty"`
	VAlign VAlign `json:"valign,omitempty"`
	Fill   *Color `json:"fill,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"` // wrap long text instead of clipping
}

// Text returns the concatenation of the cell's span texts.
func (c Cell) Text() string {
	var out string
	for _, s := range c.Spans {
		out += s.Text
	}
	return out
}

// Table is a gridded table instruction with explicit column widths and row
// heights in centimeters. Tables are horizontally centered on the page.
type Table struct {
	ColWidths  []float64 `json:"col_widths"`
	RowHeights []float64 `json:"row_heights"`
	Rows       [][]Cell  `json:"rows"`
}

// Width returns the total table width in centimeters.
func (t Table) Width() float64 {
	var w float64
	for _, cw := range t.ColWidths {
		w += cw
	}
	return w
}

// Height returns the total table height in centimeters.
func (t Table) Height() float64 {
	var h float64
	for _, rh := range t.RowHeights {
		h += rh
	}
	return h
}

// Spacer is a fixed vertical gap instruction.
type Spacer struct {
	Height float64 `json:"height"`
}

// Element is a single render instruction on a page.
// Exactly one of Table or Spacer is set.
type Element struct {
	Table  *Table  `json:"table,omitempty"`
	Spacer *Spacer `json:"spacer,omitempty"`
}

// Page is an ordered list of render instructions.
type Page struct {
	Elements []Element `json:"elements"`
}

// Document is the final render-ready artifact description.
type Document struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	Pages      []Page  `json:"pages"`
}

// NewDocument creates an empty A4 portrait document.
func NewDocument() *Document {
	return &Document{
		PageWidth:  A4WidthCm,
		PageHeight: A4HeightCm,
	}
}
