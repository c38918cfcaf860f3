package layer

import "github.com/benoitkugler/pagelayer/props"

// PositionMode selects which offsets PositionAbsolute resolves.
type PositionMode uint8

const (
	PositionBoth PositionMode = iota + 1
	PositionHorizontally
	PositionVertically
)

// Style exposes the computed style flags and values the stacking
// and pagination core reads from a box. It is built by the style
// engine; the core never mutates it.
type Style struct {
	// RunningName is the identifier of a `position: running()` block,
	// empty for regular boxes.
	RunningName string

	// Transform is the computed `transform` property, empty for `none`.
	Transform                          props.Transforms
	TransformOriginX, TransformOriginY props.Dimension

	ZIndex     int
	AutoZIndex bool

	Positioned  bool
	Absolute    bool
	Fixed       bool
	Relative    bool
	InlineLevel bool

	// BottomAuto is true when the `bottom` offset is auto, which
	// selects the single pass absolute positioning strategy.
	BottomAuto bool

	AvoidPageBreakInside bool
}

// BoxDimensions is the geometry snapshot exchanged with the box engine
// around the measure/reset/reposition steps of absolute layout.
type BoxDimensions struct {
	LeftMBP      int // left margin, border and padding
	RightMBP     int
	ContentWidth int
	Height       int
}

// Box is the abstraction of a laid out box consumed from the box
// engine. The stacking core reads geometry and style from it, and
// drives layout of out-of-flow boxes through it.
//
// Coordinates are in device units ; AbsX and AbsY are relative to the
// document canvas, X and Y to the containing block.
type Box interface {
	Style() *Style

	X() int
	Y() int
	SetXY(x, y int)
	AbsX() int
	AbsY() int
	SetAbsXY(x, y int)
	Width() int
	Height() int

	// StaticY is the document Y of the static equivalent of the box,
	// used when resolving running blocks against a page.
	StaticY() int

	Dimensions() BoxDimensions
	SetDimensions(BoxDimensions)

	// Layout performs (or resumes) layout of the box and its
	// descendants ; Reset discards a trial layout.
	Layout(c LayoutContext)
	Reset(c LayoutContext)

	// SetNeedPageClear forces the next layout to start the box
	// on a fresh page.
	SetNeedPageClear(bool)

	PositionAbsolute(c LayoutContext, mode PositionMode)
	// PositionAbsoluteOnPage adjusts the position so that the box
	// starts on the page it was resolved to.
	PositionAbsoluteOnPage(c LayoutContext)
	PositionRelative(c LayoutContext)

	CalcCanvasLocation()
	CalcChildLocations()

	SetContainingBlock(cb Box)

	SetLayer(l *Layer)
	SetContainingLayer(l *Layer)
}
