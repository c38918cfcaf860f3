package layer

import (
	"sort"

	"github.com/benoitkugler/pagelayer/utils"
)

// PagedMode selects how page painting positions are computed.
type PagedMode uint8

const (
	// PagedModeScreen stacks the full pages, margins included,
	// for a continuous screen presentation.
	PagedModeScreen PagedMode = iota + 1
	// PagedModePrint stacks the content areas only, for discrete
	// print output.
	PagedModePrint
)

// PageStyle is the resolved CSS paged-media style for one page,
// matched by page name and pseudo-page class.
type PageStyle struct {
	PageName string

	// outer size, margins included
	Width, Height int

	MarginTop, MarginRight, MarginBottom, MarginLeft int
}

func (s PageStyle) ContentWidth() int  { return s.Width - s.MarginLeft - s.MarginRight }
func (s PageStyle) ContentHeight() int { return s.Height - s.MarginTop - s.MarginBottom }

// PageBox is one rectangular page region of a paginated layout.
//
// A page covers the document Y interval [Top, Bottom], both bounds
// included ; consecutive pages are contiguous, the next page starting
// at Bottom + 1.
type PageBox struct {
	Style PageStyle

	pageNo      int
	top, bottom int

	paintingTop, paintingBottom int

	outerWidth int
}

// NewPageBox builds a page styled by the paged-media rules for the
// given pseudo-page class. The page name is taken from the layout
// context when c is one.
func NewPageBox(c StyleContext, pseudoPage string) *PageBox {
	// Pages are created during layout, but the output device also
	// triggers lookups : the page name is only known in the former case.
	pageName := ""
	if lc, ok := c.(LayoutContext); ok {
		pageName = lc.PageName()
	}

	page := &PageBox{Style: c.PageStyle(pageName, pseudoPage)}
	page.outerWidth = page.Style.Width
	return page
}

func (p *PageBox) PageNo() int { return p.pageNo }

func (p *PageBox) Top() int { return p.top }

func (p *PageBox) Bottom() int { return p.bottom }

// Contains returns whether document Y y falls on this page.
func (p *PageBox) Contains(y int) bool { return y >= p.top && y <= p.bottom }

// SetTopAndBottom places the page in document coordinates, the bottom
// bound following from the content height.
func (p *PageBox) SetTopAndBottom(top int) {
	p.top = top
	p.bottom = top + p.Style.ContentHeight() - 1
}

func (p *PageBox) Width() int { return p.Style.Width }

func (p *PageBox) Height() int { return p.Style.Height }

func (p *PageBox) ContentWidth() int { return p.Style.ContentWidth() }

func (p *PageBox) ContentHeight() int { return p.Style.ContentHeight() }

// OuterWidth is the page width recorded at creation time.
func (p *PageBox) OuterWidth() int { return p.outerWidth }

// PaintingTop and PaintingBottom are the presentation coordinates set
// by AssignPagePaintingPositions.
func (p *PageBox) PaintingTop() int { return p.paintingTop }

func (p *PageBox) PaintingBottom() int { return p.paintingBottom }

// pagesOwner returns the layer actually holding the page list (the
// root in practice), or nil if no page was created yet.
func (l *Layer) pagesOwner() *Layer {
	if l.pages != nil {
		return l
	}
	if l.parent == nil {
		return nil
	}
	return l.parent.pagesOwner()
}

// Pages returns the page list of the document, in increasing Y order.
// The returned slice must not be modified.
func (l *Layer) Pages() []*PageBox {
	if o := l.pagesOwner(); o != nil {
		return o.pages
	}
	return nil
}

// SetPages installs the page list on this layer.
func (l *Layer) SetPages(pages []*PageBox) { l.pages = pages }

// AddPage appends a new page after the last one, with pseudo-page
// class "first" for page 0, then "right" and "left" alternating by
// even and odd index.
func (l *Layer) AddPage(c StyleContext) {
	o := l.pagesOwner()
	if o == nil {
		o = l
	}

	var pseudoPage string
	switch {
	case len(o.pages) == 0:
		pseudoPage = "first"
	case len(o.pages)%2 == 0:
		pseudoPage = "right"
	default:
		pseudoPage = "left"
	}

	page := NewPageBox(c, pseudoPage)
	if len(o.pages) == 0 {
		page.SetTopAndBottom(0)
	} else {
		previous := o.pages[len(o.pages)-1]
		page.SetTopAndBottom(previous.bottom + 1)
	}

	page.pageNo = len(o.pages)
	o.pages = append(o.pages, page)
}

// the page we are looking for is overwhelmingly near the end of the
// document, so try a linear backward scan for a few pages before
// falling back to a binary search
const maxRearSearch = 5

// Page returns the page covering document Y y, or nil for y < 0.
//
// If y is past the end of the last page, pages are created as
// required and the new last page is returned. Every successful
// lookup updates the one-slot page cache.
func (l *Layer) Page(c StyleContext, y int) *PageBox {
	if y < 0 {
		return nil
	}

	o := l.pagesOwner()
	if o == nil {
		o = l
	}

	if cached := o.lastRequestedPage; cached != nil && cached.Contains(y) {
		return cached
	}

	if pages := o.pages; len(pages) != 0 && y <= pages[len(pages)-1].bottom {
		count := len(pages)
		for i := count - 1; i >= 0 && i >= count-maxRearSearch; i-- {
			if pages[i].Contains(y) {
				o.lastRequestedPage = pages[i]
				return pages[i]
			}
		}

		// pages are contiguous from 0, so the first page whose bottom
		// bound reaches y contains it
		needle := sort.Search(count-maxRearSearch, func(i int) bool {
			return y <= pages[i].bottom
		})
		page := pages[needle]
		o.lastRequestedPage = page
		return page
	}

	o.addPagesUntil(c, y)
	page := o.pages[len(o.pages)-1]
	o.lastRequestedPage = page
	return page
}

func (l *Layer) addPagesUntil(c StyleContext, y int) {
	for len(l.pages) == 0 || y > l.pages[len(l.pages)-1].bottom {
		l.AddPage(c)
	}
}

// FirstPageForY is like Page, but returns the first page instead of
// nil for a negative y, when any page exists.
func (l *Layer) FirstPageForY(c StyleContext, y int) *PageBox {
	page := l.Page(c, y)

	if page == nil && y < 0 {
		if pages := l.Pages(); len(pages) != 0 {
			return pages[0]
		}
	}

	return page
}

// FirstPageForBox returns the page holding the top of the box.
func (l *Layer) FirstPageForBox(c StyleContext, box Box) *PageBox {
	return l.Page(c, box.AbsY())
}

// LastPageForBox returns the page holding the bottom of the box,
// creating pages as needed.
func (l *Layer) LastPageForBox(c StyleContext, box Box) *PageBox {
	return l.Page(c, box.AbsY()+box.Height()-1)
}

// EnsureHasPage extends the page list to cover the box.
func (l *Layer) EnsureHasPage(c StyleContext, box Box) {
	l.LastPageForBox(c, box)
}

// PagesInRange returns the minimal run of pages covering the interval
// from top to bottom (swapped if inverted), creating pages when
// bottom extends past the last one. It returns nil when the interval
// starts above the document.
func (l *Layer) PagesInRange(c StyleContext, top, bottom int) []*PageBox {
	if top > bottom {
		top, bottom = bottom, top
	}

	first := l.Page(c, top)
	if first == nil {
		return nil
	}
	if bottom <= first.bottom {
		return []*PageBox{first}
	}

	pages := []*PageBox{first}
	current := first.bottom + 1
	curPage := first
	for bottom > curPage.bottom {
		curPage = l.Page(c, current)
		current = curPage.bottom + 1
		pages = append(pages, curPage)
	}

	return pages
}

// LastPage returns the last page, or nil if no page exists.
func (l *Layer) LastPage() *PageBox {
	pages := l.Pages()
	if len(pages) == 0 {
		return nil
	}
	return pages[len(pages)-1]
}

func (l *Layer) IsLastPage(page *PageBox) bool {
	pages := l.Pages()
	return len(pages) != 0 && pages[len(pages)-1] == page
}

// RemoveLastPage drops the last page, invalidating the page cache if
// it pointed to it.
func (l *Layer) RemoveLastPage() {
	o := l.pagesOwner()
	page := o.pages[len(o.pages)-1]
	o.pages = o.pages[:len(o.pages)-1]
	if page == o.lastRequestedPage {
		o.lastRequestedPage = nil
	}
}

// TrimEmptyPages removes the trailing pages starting at or beyond
// maxY. Such pages are left over when a "keep together" constraint
// cannot be satisfied and is dropped. Non trailing pages and page 0
// are never removed.
func (l *Layer) TrimEmptyPages(maxY int) {
	o := l.pagesOwner()
	if o == nil {
		return
	}
	for i := len(o.pages) - 1; i > 0; i-- {
		page := o.pages[i]
		if page.top < maxY {
			break
		}
		if page == o.lastRequestedPage {
			o.lastRequestedPage = nil
		}
		o.pages = o.pages[:i]
	}
}

// TrimPageCount removes trailing pages until exactly newPageCount
// remain.
func (l *Layer) TrimPageCount(newPageCount int) {
	o := l.pagesOwner()
	if o == nil {
		return
	}
	for len(o.pages) > newPageCount {
		o.RemoveLastPage()
	}
}

// AssignPagePaintingPositions lays the pages out top to bottom in
// presentation coordinates, separated by additionalClearance.
// An unknown mode is a caller error and panics.
func (l *Layer) AssignPagePaintingPositions(mode PagedMode, additionalClearance int) {
	paintingTop := additionalClearance
	for _, page := range l.Pages() {
		page.paintingTop = paintingTop
		switch mode {
		case PagedModeScreen:
			page.paintingBottom = paintingTop + page.Height()
		case PagedModePrint:
			page.paintingBottom = paintingTop + page.ContentHeight()
		default:
			panic("illegal paged mode")
		}
		paintingTop = page.paintingBottom + additionalClearance
	}
}

// MaxPageWidth returns the widest page width, additionalClearance
// added on both sides.
func (l *Layer) MaxPageWidth(additionalClearance int) int {
	maxWidth := 0
	for _, page := range l.Pages() {
		maxWidth = utils.MaxInt(maxWidth, page.Width()+additionalClearance*2)
	}
	return maxWidth
}

// CrossesPageBreak returns whether a box spanning the document Y
// interval [top, bottom] would cross a page boundary. The space
// reserved at the bottom of the page (footnotes, repeated table
// footers) counts as past the boundary, except inside `float: bottom`
// content which is laid out in that reserved space.
func (l *Layer) CrossesPageBreak(c LayoutContext, top, bottom int) bool {
	if top < 0 {
		return false
	}
	page := l.Page(c, top)
	if c.InFloatBottom() {
		return bottom > page.bottom
	}
	return bottom > page.bottom-c.ExtraSpaceBottom()
}
