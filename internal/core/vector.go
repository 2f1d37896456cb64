package core

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a pointer position in board space. Arithmetic is delegated to
// gonum's r3 package.
type Vector struct {
	X, Y, Z float64
}

// Vec2 builds a vector on the z=0 plane.
func Vec2(x, y float64) Vector { return Vector{X: x, Y: y} }

func (v Vector) vec() r3.Vec { return r3.Vec(v) }

// Add returns v+u.
func (v Vector) Add(u Vector) Vector { return Vector(r3.Add(v.vec(), u.vec())) }

// Sub returns v-u.
func (v Vector) Sub(u Vector) Vector { return Vector(r3.Sub(v.vec(), u.vec())) }

// Scale returns f*v.
func (v Vector) Scale(f float64) Vector { return Vector(r3.Scale(f, v.vec())) }

// Len returns the Euclidean norm.
func (v Vector) Len() float64 { return r3.Norm(v.vec()) }

// Distance returns |u-v|.
func (v Vector) Distance(u Vector) float64 { return u.Sub(v).Len() }

// Point rounds the x and y components to an image.Point.
func (v Vector) Point() image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}

// Segment returns the integer points visited when walking from a to b in unit
// steps, endpoints included and consecutive duplicates dropped.
func Segment(a, b Vector) []image.Point {
	dist := a.Distance(b)
	steps := int(math.Ceil(dist))
	pts := make([]image.Point, 0, steps+1)
	pts = append(pts, a.Point())
	if steps == 0 {
		return pts
	}
	dir := b.Sub(a).Scale(1 / float64(steps))
	for i := 1; i <= steps; i++ {
		p := a.Add(dir.Scale(float64(i))).Point()
		if p != pts[len(pts)-1] {
			pts = append(pts, p)
		}
	}
	return pts
}
