// Package props mirrors the slice of the computed CSS value model read
// by the stacking and pagination core : dimensions with units, and the
// computed value of the `transform` property.
//
// The values are produced by the style engine (cascade and computation
// are not handled here).
package props

import (
	"fmt"
	"math"

	"github.com/benoitkugler/pagelayer/utils"
)

type Fl = utils.Fl

// Unit is the unit tag of a [Dimension].
type Unit uint8

const (
	// Scalar means no unit, but a valid value
	Scalar Unit = iota
	// Perc is a percentage (%), resolved against a reference length
	Perc
	// Px is an absolute length, in device units
	Px
	// Rad, Turn, Deg, Grad are angle units
	Rad
	Turn
	Deg
	Grad
)

func (u Unit) String() string {
	switch u {
	case Scalar:
		return ""
	case Perc:
		return "%"
	case Px:
		return "px"
	case Rad:
		return "rad"
	case Turn:
		return "turn"
	case Deg:
		return "deg"
	case Grad:
		return "grad"
	default:
		return "<invalid unit>"
	}
}

// Dimension is a value with a unit.
// Dimension without unit is interpreted as float.
type Dimension struct {
	Value Fl
	Unit  Unit
}

func NewDim(v Fl, u Unit) Dimension { return Dimension{Value: v, Unit: u} }

func (d Dimension) String() string {
	return fmt.Sprintf("<%g %s>", d.Value, d.Unit)
}

// Resolve returns the length encoded by the dimension, resolving
// percentages against `ref`.0 is returned for angle units.
func (d Dimension) Resolve(ref Fl) Fl {
	switch d.Unit {
	case Perc:
		return d.Value * ref / 100
	case Px, Scalar:
		return d.Value
	default:
		return 0
	}
}

// ToRadians normalizes an angle dimension to radians.
// Scalar values are interpreted as radians.
func (d Dimension) ToRadians() Fl {
	switch d.Unit {
	case Deg:
		return d.Value * math.Pi / 180
	case Grad:
		return d.Value * math.Pi / 200
	case Turn:
		return d.Value * 2 * math.Pi
	default: // Rad, Scalar
		return d.Value
	}
}

type Dimensions []Dimension

// SDimensions is a named function with its arguments,
// like rotate(30deg) or matrix(1, 0, 0, 1, 10, 10).
type SDimensions struct {
	String     string
	Dimensions Dimensions
}

// Transforms is the computed value of the `transform` property :
// an ordered list of transform functions, empty meaning `none`.
type Transforms []SDimensions

// IsNone returns true if the property computes to `transform: none`.
func (ts Transforms) IsNone() bool { return len(ts) == 0 }
