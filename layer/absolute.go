package layer

// Layout of out-of-flow (absolute and fixed) boxes, which happens only
// after their containing block has completed layout.

// Finish completes the layer once its master box is laid out : for
// paginated output the pending absolute children are resolved, then,
// unless the layer is inline, the in-flow children are positioned.
func (l *Layer) Finish(c LayoutContext) {
	if c.IsPaged() {
		l.layoutAbsoluteChildren(c)
	}
	if !l.inline {
		l.PositionChildren(c)
	}
}

// PositionChildren positions the child layers relative to normal flow.
func (l *Layer) PositionChildren(c LayoutContext) {
	for _, child := range l.children {
		child.position(c)
	}
}

func (l *Layer) position(c LayoutContext) {
	style := l.master.Style()

	if style.Absolute && !c.IsPaged() {
		l.master.PositionAbsolute(c, PositionBoth)
	} else if style.Relative && (l.inline || style.InlineLevel) {
		l.master.PositionRelative(c)
		if !l.inline {
			l.master.CalcCanvasLocation()
			l.master.CalcChildLocations()
		}
	}
}

// layoutAbsoluteChildren lays out the children flagged as requiring
// layout. A box that must avoid breaking across pages and still does
// after its trial placement is reset and forced onto a fresh page,
// with up to two more attempts before the placement is accepted as is.
func (l *Layer) layoutAbsoluteChildren(c LayoutContext) {
	if len(l.children) == 0 {
		return
	}

	state := c.SaveState()

	for _, child := range l.children {
		if !child.requiresLayout {
			continue
		}
		master := child.master
		isFixed := master.Style().Fixed

		l.layoutAbsoluteChild(c, child)

		if !isFixed && master.Style().AvoidPageBreakInside &&
			l.boxCrossesPageBreak(c, master) {

			master.Reset(c)
			master.SetNeedPageClear(true)

			l.layoutAbsoluteChild(c, child)

			if l.boxCrossesPageBreak(c, master) {
				master.Reset(c)
				l.layoutAbsoluteChild(c, child)
			}
		}

		child.requiresLayout = false
		child.Finish(c)

		if !isFixed {
			c.RootLayer().EnsureHasPage(c, master)
		}
	}

	c.RestoreState(state)
}

func (l *Layer) boxCrossesPageBreak(c LayoutContext, box Box) bool {
	top := box.AbsY()
	return c.RootLayer().CrossesPageBreak(c, top, top+box.Height()-1)
}

// layoutAbsoluteChild positions and lays out one absolute child.
//
// When the bottom offset is auto, the box is positioned first, then
// laid out, and only the horizontal position is re-resolved, since
// the content height is then known. When both top and bottom are
// constrained, the final position depends on the content height while
// the content height depends on the available width from the
// position : the box is laid out once to discover its natural
// dimensions, reset, repositioned using the pre-reset dimensions,
// then laid out again with the position committed.
func (l *Layer) layoutAbsoluteChild(c LayoutContext, child *Layer) {
	master := child.master

	if master.Style().BottomAuto {
		// set top and left
		master.PositionAbsolute(c, PositionBoth)
		master.PositionAbsoluteOnPage(c)
		c.ReInit()
		master.Layout(c)
		// set right
		master.PositionAbsolute(c, PositionHorizontally)
	} else {
		c.ReInit()
		master.Layout(c)

		before := master.Dimensions()
		master.Reset(c)
		after := master.Dimensions()

		master.SetDimensions(before)
		master.PositionAbsolute(c, PositionBoth)
		master.PositionAbsoluteOnPage(c)
		master.SetDimensions(after)

		c.ReInit()
		master.Layout(c)
	}
}

// PositionFixedLayer places a fixed layer against the viewport box,
// at painting time.
func (l *Layer) PositionFixedLayer(c LayoutContext, viewport Box) {
	fixed := l.master

	fixed.SetXY(0, 0)
	fixed.SetAbsXY(0, 0)

	fixed.SetContainingBlock(viewport)
	fixed.PositionAbsolute(c, PositionBoth)
}
