// Package coord provides a three component real vector used as the common
// space for linear blending of colours.
package coord

import "fmt"

// Coord is a point in a three dimensional real space.
type Coord struct {
	X, Y, Z float64
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Scale multiplies every component by s.
func (c Coord) Scale(s float64) Coord {
	return Coord{X: c.X * s, Y: c.Y * s, Z: c.Z * s}
}

// Div divides every component by s.
func (c Coord) Div(s float64) Coord {
	return Coord{X: c.X / s, Y: c.Y / s, Z: c.Z / s}
}

// Midpoint returns (c + o) / 2.
func (c Coord) Midpoint(o Coord) Coord {
	return c.Add(o).Div(2)
}

// String returns the coordinate as "(x, y, z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.Z)
}
