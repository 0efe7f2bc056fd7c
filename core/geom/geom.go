/*
Package geom implements simple geometric types in glyph-space coordinates.

Stroke fonts carry their path data in font-native units (Hershey units for
compact fonts, units-per-em for outline fonts). All types in this package
are plain float64 values in that space; scaling to device space is the
business of the layout engine's outer transform.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom

import "fmt"

// Point is a position in glyph space.
type Point struct {
	X, Y float64
}

// Origin is origin
var Origin = Point{0, 0}

// Stringer implementation.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Size is an extent in glyph space, used for canvas dimensions.
type Size struct {
	W, H float64
}

// Stringer implementation.
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}
