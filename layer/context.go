package layer

// StyleContext gives access to the CSS paged-media rules needed to
// build page boxes.
type StyleContext interface {
	// PageStyle resolves the style for the given page name and
	// pseudo-page class ("first", "left" or "right").
	PageStyle(pageName, pseudoPage string) PageStyle
}

// LayoutState is an opaque snapshot of the transient layout state,
// captured around absolute children processing.
type LayoutState interface{}

// LayoutContext is provided by the layout driver while boxes are
// being laid out.
type LayoutContext interface {
	StyleContext

	// IsPaged returns true for print-like paginated output,
	// false for continuous screen output.
	IsPaged() bool

	// PageName is the CSS name of the page being laid out,
	// empty for the default page.
	PageName() string

	// ExtraSpaceBottom is the space reserved at the bottom of the
	// current page (footnotes, repeated table footers).
	ExtraSpaceBottom() int

	// InFloatBottom reports whether layout currently runs inside
	// `float: bottom` content.
	InFloatBottom() bool

	SaveState() LayoutState
	RestoreState(state LayoutState)

	// ReInit resets the transient layout state before a trial layout,
	// keeping the already built layers.
	ReInit()

	RootLayer() *Layer
}

// RenderingContext is provided by the painter when resolving page
// numbers after layout has completed.
type RenderingContext interface {
	StyleContext

	// InitialPageNo is the 1-based number of the first page of the
	// document, or 0 to start at 1.
	InitialPageNo() int

	// PageNo is the index of the page being painted.
	PageNo() int
	PageCount() int
	// Page is the page being painted.
	Page() *PageBox
}
