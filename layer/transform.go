package layer

import (
	"strings"

	"github.com/benoitkugler/pagelayer/logger"
	"github.com/benoitkugler/pagelayer/matrix"
	"github.com/benoitkugler/pagelayer/props"
)

// PropagateTransforms recursively computes the cumulative transform of
// every layer of the subtree, composing each local transform onto the
// parent one.
//
// It must be called on the root, strictly after layout of the whole
// subtree and exactly once per layout pass : transform origins with
// relative units resolve against the final box width and height.
// Page-membership and coordinate-mapping queries are undefined before
// this traversal completes.
func (l *Layer) PropagateTransforms() {
	var parentCtm *matrix.Transform
	if l.parent != nil {
		parentCtm = l.parent.ctm
	}

	if l.hasLocalTransform {
		ctm := documentCoordinatesTransform(l.master, parentCtm)
		l.ctm = &ctm
	} else {
		l.ctm = parentCtm
	}

	for _, child := range l.children {
		child.PropagateTransforms()
	}
}

// CurrentTransform returns the cumulative transform of the layer in
// document coordinates, or nil when the identity is in effect.
//
// It is read-only, and only valid once PropagateTransforms has been
// called on the root layer. It is used to check if a box belonging to
// this layer sits on a particular page after the transform is applied.
func (l *Layer) CurrentTransform() *matrix.Transform { return l.ctm }

// documentCoordinatesTransform builds the cumulative transform for a
// box with a local transform : the transform function list evaluated
// at the resolved transform origin, composed onto the parent matrix.
func documentCoordinatesTransform(box Box, parent *matrix.Transform) matrix.Transform {
	style := box.Style()

	originX := style.TransformOriginX.Resolve(fl(box.Width())) + fl(box.AbsX())
	originY := style.TransformOriginY.Resolve(fl(box.Height())) + fl(box.AbsY())

	result := matrix.Translation(originX, originY)
	for _, function := range style.Transform {
		result.RightMultBy(transformFunction(box, function))
	}
	result.RightMultBy(matrix.Translation(-originX, -originY))

	if parent != nil {
		result.LeftMultBy(*parent)
	}
	return result
}

// transformFunction evaluates one CSS transform function against the
// post-layout geometry of the box. Angles are normalized to radians,
// translation percentages resolve against the box size.
func transformFunction(box Box, function props.SDimensions) matrix.Transform {
	args := function.Dimensions
	name := strings.ToLower(function.String)

	arg := func(i int) props.Dimension {
		if i < len(args) {
			return args[i]
		}
		return props.Dimension{}
	}

	switch name {
	case "translate":
		tx := arg(0).Resolve(fl(box.Width()))
		ty := arg(1).Resolve(fl(box.Height()))
		return matrix.Translation(tx, ty)
	case "translatex":
		return matrix.Translation(arg(0).Resolve(fl(box.Width())), 0)
	case "translatey":
		return matrix.Translation(0, arg(0).Resolve(fl(box.Height())))
	case "rotate":
		return matrix.Rotation(arg(0).ToRadians())
	case "scale":
		sx := arg(0).Value
		sy := sx
		if len(args) > 1 {
			sy = args[1].Value
		}
		return matrix.Scaling(sx, sy)
	case "scalex":
		return matrix.Scaling(arg(0).Value, 1)
	case "scaley":
		return matrix.Scaling(1, arg(0).Value)
	case "skew":
		return matrix.Skew(arg(0).ToRadians(), arg(1).ToRadians())
	case "skewx":
		return matrix.Skew(arg(0).ToRadians(), 0)
	case "skewy":
		return matrix.Skew(0, arg(0).ToRadians())
	case "matrix":
		return matrix.New(arg(0).Value, arg(1).Value, arg(2).Value,
			arg(3).Value, arg(4).Value, arg(5).Value)
	default:
		logger.WarningLogger.Printf("unsupported transform function %s", function.String)
		return matrix.Identity()
	}
}
