package label

import "github.com/agilomatrix/racklabel/pkg/render"

// BlocksPerPage is the fixed page capacity in label blocks.
const BlocksPerPage = 4

// Paginator accumulates label blocks into pages. A page break happens
// before placing a block whose running index (0-based, counted across the
// whole run) is a positive multiple of the capacity, so pages fill to
// exactly the capacity before a new one starts.
type Paginator struct {
	perPage int
	placed  int
	pages   []render.Page
}

// NewPaginator creates a paginator with the given page capacity.
// Non-positive capacities fall back to BlocksPerPage.
func NewPaginator(perPage int) *Paginator {
	if perPage <= 0 {
		perPage = BlocksPerPage
	}
	return &Paginator{perPage: perPage}
}

// Add places a block, starting a new page when the previous one is full.
// Nil blocks are ignored and do not count toward the page capacity.
func (p *Paginator) Add(b *Block) {
	if b == nil {
		return
	}
	if len(p.pages) == 0 || (p.placed > 0 && p.placed%p.perPage == 0) {
		p.pages = append(p.pages, render.Page{})
	}
	page := &p.pages[len(p.pages)-1]
	page.Elements = append(page.Elements, b.Elements...)
	p.placed++
}

// Blocks returns the number of blocks placed so far.
func (p *Paginator) Blocks() int {
	return p.placed
}

// Pages returns the accumulated pages in placement order.
func (p *Paginator) Pages() []render.Page {
	return p.pages
}
