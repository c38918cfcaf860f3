package layer

// Test doubles for the box engine and layout driver collaborators.

// testBox is a minimal box implementation recording the layout driver
// calls made by the layer.
type testBox struct {
	style Style

	x, y          int
	absX, absY    int
	width, height int

	staticY *int // defaults to absY

	dims BoxDimensions

	layer           *Layer
	containingLayer *Layer
	containingBlock Box

	needPageClear bool

	// onLayout simulates the box engine layout pass
	onLayout func(b *testBox, c LayoutContext)
	// onReset simulates discarding a trial layout
	onReset func(b *testBox, c LayoutContext)

	calls []string
}

func (b *testBox) record(name string) { b.calls = append(b.calls, name) }

func (b *testBox) Style() *Style { return &b.style }

func (b *testBox) X() int { return b.x }

func (b *testBox) Y() int { return b.y }

func (b *testBox) SetXY(x, y int) { b.x, b.y = x, y }

func (b *testBox) AbsX() int { return b.absX }

func (b *testBox) AbsY() int { return b.absY }

func (b *testBox) SetAbsXY(x, y int) { b.absX, b.absY = x, y }

func (b *testBox) Width() int { return b.width }

func (b *testBox) Height() int { return b.height }

func (b *testBox) StaticY() int {
	if b.staticY != nil {
		return *b.staticY
	}
	return b.absY
}

func (b *testBox) Dimensions() BoxDimensions { return b.dims }

func (b *testBox) SetDimensions(dims BoxDimensions) {
	b.record("SetDimensions")
	b.dims = dims
}

func (b *testBox) Layout(c LayoutContext) {
	b.record("Layout")
	if b.onLayout != nil {
		b.onLayout(b, c)
	}
}

func (b *testBox) Reset(c LayoutContext) {
	b.record("Reset")
	if b.onReset != nil {
		b.onReset(b, c)
	}
}

func (b *testBox) SetNeedPageClear(clear bool) {
	b.record("SetNeedPageClear")
	b.needPageClear = clear
}

func (b *testBox) PositionAbsolute(c LayoutContext, mode PositionMode) {
	switch mode {
	case PositionBoth:
		b.record("PositionAbsolute(both)")
	case PositionHorizontally:
		b.record("PositionAbsolute(horizontal)")
	case PositionVertically:
		b.record("PositionAbsolute(vertical)")
	}
}

func (b *testBox) PositionAbsoluteOnPage(c LayoutContext) { b.record("PositionAbsoluteOnPage") }

func (b *testBox) PositionRelative(c LayoutContext) { b.record("PositionRelative") }

func (b *testBox) CalcCanvasLocation() { b.record("CalcCanvasLocation") }

func (b *testBox) CalcChildLocations() { b.record("CalcChildLocations") }

func (b *testBox) SetContainingBlock(cb Box) { b.containingBlock = cb }

func (b *testBox) SetLayer(l *Layer) { b.layer = l }

func (b *testBox) SetContainingLayer(l *Layer) { b.containingLayer = l }

// testContext implements both LayoutContext and RenderingContext over
// a single page style.
type testContext struct {
	root *Layer

	pageStyle PageStyle
	pageName  string

	paged            bool
	extraSpaceBottom int
	inFloatBottom    bool

	reInitCount int
	saved       []LayoutState
	restored    []LayoutState

	initialPageNo int
	pageNo        int
	pageCount     int
	page          *PageBox
}

func (c *testContext) PageStyle(pageName, pseudoPage string) PageStyle {
	style := c.pageStyle
	style.PageName = pageName
	return style
}

func (c *testContext) IsPaged() bool { return c.paged }

func (c *testContext) PageName() string { return c.pageName }

func (c *testContext) ExtraSpaceBottom() int { return c.extraSpaceBottom }

func (c *testContext) InFloatBottom() bool { return c.inFloatBottom }

func (c *testContext) SaveState() LayoutState {
	state := len(c.saved)
	c.saved = append(c.saved, state)
	return state
}

func (c *testContext) RestoreState(state LayoutState) { c.restored = append(c.restored, state) }

func (c *testContext) ReInit() { c.reInitCount++ }

func (c *testContext) RootLayer() *Layer { return c.root }

func (c *testContext) InitialPageNo() int { return c.initialPageNo }

func (c *testContext) PageNo() int { return c.pageNo }

func (c *testContext) PageCount() int { return c.pageCount }

func (c *testContext) Page() *PageBox { return c.page }

// newTestContext returns a paged context with 100 units of page
// content height.
func newTestContext(root *Layer) *testContext {
	return &testContext{
		root:  root,
		paged: true,
		pageStyle: PageStyle{
			Width: 90, Height: 120,
			MarginTop: 10, MarginBottom: 10, MarginLeft: 5, MarginRight: 5,
		},
	}
}

// newStackingBox returns a positioned box establishing a stacking
// context with the given z-index.
func newStackingBox(zIndex int) *testBox {
	return &testBox{style: Style{Positioned: true, ZIndex: zIndex}}
}

// newAutoBox returns a positioned box with z-index auto.
func newAutoBox() *testBox {
	return &testBox{style: Style{Positioned: true, AutoZIndex: true}}
}

func newRoot() (*Layer, *testContext) {
	root := NewRootLayer(newAutoBox())
	return root, newTestContext(root)
}
