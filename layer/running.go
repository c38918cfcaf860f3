package layer

import "sort"

// RunningPosition selects which running block is resolved for a page.
type RunningPosition uint8

const (
	// RunningStart is the nearest block ending before the page top.
	RunningStart RunningPosition = iota + 1
	// RunningFirst is the first block within the page, falling back
	// to RunningStart when the page holds none.
	RunningFirst
	// RunningLast is the nearest block at or before the page bottom.
	RunningLast
	// RunningLastExcept is like RunningLast, but resolves to nothing
	// when a block falls within the page itself.
	RunningLastExcept
)

// AddRunningBlock registers a `position: running()` block, keyed by
// its running identifier. The per-identifier list is kept sorted by
// ascending document Y.
func (l *Layer) AddRunningBlock(block Box) {
	if l.runningBlocks == nil {
		l.runningBlocks = make(map[string][]Box)
	}

	identifier := block.Style().RunningName
	blocks := append(l.runningBlocks[identifier], block)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].AbsY() < blocks[j].AbsY()
	})
	l.runningBlocks[identifier] = blocks
}

// RemoveRunningBlock unregisters a block leaving the tree.
// It is a no-op when the block or the registry is absent.
func (l *Layer) RemoveRunningBlock(block Box) {
	if l.runningBlocks == nil {
		return
	}

	identifier := block.Style().RunningName
	blocks := l.runningBlocks[identifier]
	for i, b := range blocks {
		if b == block {
			l.runningBlocks[identifier] = append(blocks[:i], blocks[i+1:]...)
			return
		}
	}
}

// RunningBlock resolves the running block visible on the given page
// for the identifier, by a linear scan in Y order. It returns nil for
// an unknown identifier or an empty registry.
func (l *Layer) RunningBlock(identifier string, page *PageBox, which RunningPosition) Box {
	if l.runningBlocks == nil || page == nil {
		return nil
	}

	blocks := l.runningBlocks[identifier]
	if blocks == nil {
		return nil
	}

	switch which {
	case RunningStart:
		var prev Box
		for _, b := range blocks {
			if b.StaticY() >= page.top {
				break
			}
			prev = b
		}
		return prev
	case RunningFirst:
		for _, b := range blocks {
			if page.Contains(b.StaticY()) {
				return b
			}
		}
		return l.RunningBlock(identifier, page, RunningStart)
	case RunningLast:
		var prev Box
		for _, b := range blocks {
			if b.StaticY() > page.bottom {
				break
			}
			prev = b
		}
		return prev
	case RunningLastExcept:
		var prev Box
		for _, b := range blocks {
			y := b.StaticY()
			if page.Contains(y) {
				return nil
			}
			if y > page.bottom {
				break
			}
			prev = b
		}
		return prev
	}

	panic("invalid running block position")
}

// AddPageSequence registers a box restarting page numbering, with set
// semantics. The sorted view is invalidated.
func (l *Layer) AddPageSequence(start Box) {
	for _, b := range l.pageSequences {
		if b == start {
			return
		}
	}
	l.pageSequences = append(l.pageSequences, start)
	l.sortedPageSequences = nil
}

// sortedSequencesList materializes the Y-sorted sequence starts,
// lazily, or returns nil when none is registered.
func (l *Layer) sortedSequencesList() []Box {
	if l.pageSequences == nil {
		return nil
	}

	if l.sortedPageSequences == nil {
		sorted := append([]Box(nil), l.pageSequences...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AbsY() < sorted[j].AbsY()
		})
		l.sortedPageSequences = sorted
	}

	return l.sortedPageSequences
}

// findPageSequence returns the sequence start governing document Y
// absY : the last one, unless a later sequence starts after absY.
func findPageSequence(sequences []Box, absY int) Box {
	var result Box
	for i := 0; i < len(sequences); i++ {
		result = sequences[i]
		if i < len(sequences)-1 && sequences[i+1].AbsY() > absY {
			break
		}
	}
	return result
}

// pageSequenceStart returns the index of the latest sequence start
// before the page, or -1.
func (l *Layer) pageSequenceStart(sequences []Box, page *PageBox) int {
	for i := len(sequences) - 1; i >= 0; i-- {
		if sequences[i].AbsY() < page.bottom {
			return i
		}
	}
	return -1
}

func initialOffset(c RenderingContext) int {
	if c.InitialPageNo() > 0 {
		return c.InitialPageNo() - 1
	}
	return 0
}

// RelativePageNoForY returns the page number of document Y absY,
// counted from the nearest preceding sequence start, or from the
// document start (offset by the initial page number) when no sequence
// is registered.
func (l *Layer) RelativePageNoForY(c RenderingContext, absY int) int {
	sequences := l.sortedSequencesList()
	if len(sequences) == 0 {
		return initialOffset(c) + l.Page(c, absY).PageNo()
	}
	pageSequence := findPageSequence(sequences, absY)
	sequenceStartPageNo := l.Page(c, pageSequence.AbsY()).PageNo()
	return l.Page(c, absY).PageNo() - sequenceStartPageNo
}

// RelativePageNo returns the number of the page being painted,
// relative to its page sequence.
func (l *Layer) RelativePageNo(c RenderingContext) int {
	sequences := l.sortedSequencesList()
	if len(sequences) == 0 {
		return initialOffset(c) + c.PageNo()
	}
	start := l.pageSequenceStart(sequences, c.Page())
	if start == -1 {
		return initialOffset(c) + c.PageNo()
	}
	return c.PageNo() - l.FirstPageForBox(c, sequences[start]).PageNo()
}

// RelativePageCount returns the length of the page sequence holding
// the page being painted : the distance to the next sequence's first
// page, or to the document's last page when none follows.
func (l *Layer) RelativePageCount(c RenderingContext) int {
	sequences := l.sortedSequencesList()
	if len(sequences) == 0 {
		return initialOffset(c) + c.PageCount()
	}

	start := l.pageSequenceStart(sequences, c.Page())

	firstPage := 0
	if start != -1 {
		firstPage = l.FirstPageForBox(c, sequences[start]).PageNo()
	}

	var lastPage int
	if start < len(sequences)-1 {
		lastPage = l.FirstPageForBox(c, sequences[start+1]).PageNo()
	} else {
		lastPage = c.PageCount()
	}

	sequenceLength := lastPage - firstPage
	if start == -1 {
		sequenceLength += initialOffset(c)
	}
	return sequenceLength
}
