package ufo

import "math"

// Point is a cursor position in window coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the displacement that moves q onto p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p moved by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Clamp returns p limited to the rectangle [0,w]x[0,h].
func (p Point) Clamp(w, h float64) Point {
	return Point{X: math.Max(0, math.Min(p.X, w)), Y: math.Max(0, math.Min(p.Y, h))}
}
