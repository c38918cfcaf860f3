// Package utils provides the small numeric helpers shared by the
// layout packages.
package utils

// Fl is the numeric type used for geometry and transforms.
type Fl = float32

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}
