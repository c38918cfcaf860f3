// Package layer implements the stacking context tree built alongside
// the box tree : all positioned content, as well as content with an
// overflow value other than visible, creates a layer.
//
// Layers which define stacking contexts provide the entry points for
// rendering the box tree to an output device, following the paint
// order of Appendix E of the CSS specification. The package also
// provides page management for paged output (on-demand page creation,
// lookup and trimming), running block and page sequence registries,
// and the layout of absolute content, which happens only after its
// containing block has completed layout.
package layer

import (
	"sort"

	"github.com/benoitkugler/pagelayer/matrix"
	"github.com/benoitkugler/pagelayer/utils"
)

type fl = utils.Fl

// ZTier selects one tier of the paint order, mirroring the partition
// of the z-index property.
type ZTier uint8

const (
	// Positive matches stacking contexts with a positive z-index.
	Positive ZTier = iota + 1
	// Zero matches stacking contexts with an explicit zero z-index.
	Zero
	// Negative matches stacking contexts with a negative z-index.
	Negative
	// Auto matches layers without explicit z-index.
	Auto
)

// Layer is one node of the stacking context tree.
//
// A layer is created by, and owns a reference to, exactly one box (its
// master). The root layer additionally owns the page list and the
// running block and page sequence registries for the document.
type Layer struct {
	parent   *Layer // nil for the root and for isolated layers
	children []*Layer
	master   Box

	// end is the last box of an inline layer, read by inline painters.
	end Box

	floats []Box

	pages             []*PageBox
	lastRequestedPage *PageBox

	runningBlocks map[string][]Box

	pageSequences       []Box
	sortedPageSequences []Box

	// cumulative transform, populated by PropagateTransforms ;
	// nil encodes the identity
	ctm *matrix.Transform

	stackingContext   bool
	inline            bool
	isolated          bool
	requiresLayout    bool
	forDeletion       bool
	hasFixedAncestor  bool
	hasLocalTransform bool
}

// NewLayer creates a child layer for the given box.
// The layer is a stacking context if the box is positioned with a non
// auto z-index, or has a transform.
func NewLayer(parent *Layer, master Box) *Layer {
	style := master.Style()
	l := &Layer{
		parent: parent,
		master: master,
		stackingContext: (style.Positioned && !style.AutoZIndex) ||
			!style.Transform.IsNone(),
		hasLocalTransform: !style.Transform.IsNone(),
		hasFixedAncestor:  (parent != nil && parent.hasFixedAncestor) || style.Fixed,
	}
	master.SetLayer(l)
	master.SetContainingLayer(l)
	return l
}

// NewRootLayer creates the root layer, which is always a stacking
// context.
func NewRootLayer(master Box) *Layer {
	l := NewLayer(nil, master)
	l.stackingContext = true
	return l
}

// NewIsolatedLayer creates a detached stacking context excluded from
// the normal paint order collection of its future parent, as used for
// isolated transparency groups.
func NewIsolatedLayer(master Box) *Layer {
	l := NewRootLayer(master)
	l.isolated = true
	return l
}

func (l *Layer) Master() Box { return l.master }

func (l *Layer) Parent() *Layer { return l.parent }

func (l *Layer) IsIsolated() bool { return l.isolated }

func (l *Layer) IsStackingContext() bool { return l.stackingContext }

func (l *Layer) SetStackingContext(b bool) { l.stackingContext = b }

func (l *Layer) IsInline() bool { return l.inline }

func (l *Layer) SetInline(b bool) { l.inline = b }

func (l *Layer) RequiresLayout() bool { return l.requiresLayout }

func (l *Layer) SetRequiresLayout(b bool) { l.requiresLayout = b }

func (l *Layer) IsForDeletion() bool { return l.forDeletion }

func (l *Layer) SetForDeletion(b bool) { l.forDeletion = b }

func (l *Layer) HasFixedAncestor() bool { return l.hasFixedAncestor }

func (l *Layer) HasLocalTransform() bool { return l.hasLocalTransform }

// End returns the last box of an inline layer.
func (l *Layer) End() Box { return l.end }

func (l *Layer) SetEnd(b Box) { l.end = b }

// ZIndex returns the z-index of the master box, 0 for auto.
func (l *Layer) ZIndex() int {
	if l.master.Style().AutoZIndex {
		return 0
	}
	return l.master.Style().ZIndex
}

func (l *Layer) IsZIndexAuto() bool { return l.master.Style().AutoZIndex }

// IsRoot returns true for the root of the stacking tree.
func (l *Layer) IsRoot() bool {
	return l.parent == nil && l.stackingContext
}

// Root walks up the parent chain to the root layer.
func (l *Layer) Root() *Layer {
	if l.IsRoot() {
		return l
	}
	return l.parent.Root()
}

func (l *Layer) AddChild(child *Layer) {
	l.children = append(l.children, child)
}

// Children returns the child layers, in document order.
// The returned slice must not be modified.
func (l *Layer) Children() []*Layer { return l.children }

// remove unlinks child from the children list.
// The child must actually be present, or the tree is corrupted.
func (l *Layer) remove(child *Layer) {
	for i, c := range l.children {
		if c == child {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
	panic("could not find layer to remove")
}

// Detach unlinks the layer from its parent and marks it for deletion,
// when its master box leaves the tree. Other components holding a
// reference during the same pass see the tombstone, not a freed node.
func (l *Layer) Detach() {
	if l.parent != nil {
		l.parent.remove(l)
	}
	l.forDeletion = true
}

// AddFloat registers an in-flow float against this layer's
// formatting context.
func (l *Layer) AddFloat(floater Box) {
	l.floats = append(l.floats, floater)
}

// RemoveFloat unregisters a float, when its box is reset.
func (l *Layer) RemoveFloat(floater Box) {
	for i, f := range l.floats {
		if f == floater {
			l.floats = append(l.floats[:i], l.floats[i+1:]...)
			return
		}
	}
}

// Floats returns the registered floats. The returned slice must not
// be modified.
func (l *Layer) Floats() []Box { return l.floats }

// stackingContextLayers returns the direct stacking context children
// matching the tier, in document order.
func (l *Layer) stackingContextLayers(which ZTier) []*Layer {
	var result []*Layer
	for _, target := range l.children {
		if target.forDeletion || target.isolated {
			continue
		}
		if !target.stackingContext {
			continue
		}
		if !target.IsZIndexAuto() {
			zIndex := target.ZIndex()
			if (which == Negative && zIndex < 0) ||
				(which == Positive && zIndex > 0) ||
				(which == Zero && zIndex == 0) {
				result = append(result, target)
			}
		} else if which == Auto {
			result = append(result, target)
		}
	}
	return result
}

// Collect returns the descendant layers to be painted at the given
// tier, in document order : direct stacking context children first,
// then, recursing through non stacking context children, the matching
// descendants. Descent stops at nested stacking contexts, which
// resolve their own tiers. Layers marked for deletion or isolated are
// skipped along with their whole subtree.
//
// A layer with children composites as : Negative tier, own background
// and content, Auto tier in document order, Zero tier, Positive tier.
func (l *Layer) Collect(which ZTier) []*Layer {
	result := l.stackingContextLayers(which)

	for _, child := range l.children {
		if child.stackingContext {
			continue
		}
		if child.forDeletion || child.isolated {
			continue
		}
		if which == Auto && child.IsZIndexAuto() {
			result = append(result, child)
		} else if which == Negative && child.ZIndex() < 0 {
			result = append(result, child)
		} else if which == Positive && child.ZIndex() > 0 {
			result = append(result, child)
		} else if which == Zero && !child.IsZIndexAuto() && child.ZIndex() == 0 {
			result = append(result, child)
		}
		result = append(result, child.Collect(which)...)
	}

	return result
}

// SortedLayers returns Collect(which) sorted by ascending z-index.
// Layers sharing a z-index keep their document order.
func (l *Layer) SortedLayers(which ZTier) []*Layer {
	result := l.Collect(which)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ZIndex() < result[j].ZIndex()
	})
	return result
}
