package props

import (
	"math"
	"testing"

	tu "github.com/benoitkugler/pagelayer/utils/testutils"
)

func TestResolve(t *testing.T) {
	for _, test := range []struct {
		dim Dimension
		ref Fl
		exp Fl
	}{
		{Dimension{50, Perc}, 200, 100},
		{Dimension{-10, Perc}, 50, -5},
		{Dimension{12, Px}, 200, 12},
		{Dimension{7, Scalar}, 200, 7},
		{Dimension{90, Deg}, 200, 0}, // angles have no length
		{Dimension{}, 200, 0},
	} {
		tu.AssertEqual(t, test.dim.Resolve(test.ref), test.exp)
	}
}

func TestToRadians(t *testing.T) {
	for _, test := range []struct {
		dim Dimension
		exp Fl
	}{
		{Dimension{180, Deg}, math.Pi},
		{Dimension{200, Grad}, math.Pi},
		{Dimension{0.5, Turn}, math.Pi},
		{Dimension{2, Rad}, 2},
		{Dimension{3, Scalar}, 3},
	} {
		got := test.dim.ToRadians()
		if d := got - test.exp; d > 1e-5 || d < -1e-5 {
			t.Fatalf("%s : expected %g radians, got %g", test.dim, test.exp, got)
		}
	}
}

func TestIsNone(t *testing.T) {
	tu.AssertEqual(t, Transforms(nil).IsNone(), true)
	tu.AssertEqual(t, Transforms{}.IsNone(), true)
	tu.AssertEqual(t, Transforms{{String: "rotate"}}.IsNone(), false)
}

func TestUnitString(t *testing.T) {
	tu.AssertEqual(t, Perc.String(), "%")
	tu.AssertEqual(t, Unit(200).String(), "<invalid unit>")
}
