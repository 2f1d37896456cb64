package core

import (
	"errors"
	"fmt"
	"strings"
)

// Layout selects how (x, y, z) coordinates map onto the backing slice.
type Layout uint8

const (
	// LayoutInterleaved keeps every channel of a cell adjacent and stores rows
	// one after another: y*w*d + x*d + z. This is the default layout.
	LayoutInterleaved Layout = iota
	// LayoutPlanar stores each channel as a full w*h plane: x + y*w + z*w*h.
	LayoutPlanar
)

// String returns the layout name used by flags and logs.
func (l Layout) String() string {
	switch l {
	case LayoutPlanar:
		return "planar"
	default:
		return "interleaved"
	}
}

// ParseLayout accepts "interleaved"/"gl" and "planar"/"cv".
func ParseLayout(s string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interleaved", "gl":
		return LayoutInterleaved, true
	case "planar", "cv":
		return LayoutPlanar, true
	}
	return LayoutInterleaved, false
}

// ErrOutOfRange is returned by Get and Set for coordinates outside the grid.
var ErrOutOfRange = errors.New("core: coordinate out of range")

// Wrap maps any integer i onto [0, dim) using a non-negative modulo.
func Wrap(dim, i int) int {
	if dim <= 0 {
		return 0
	}
	return (i%dim + dim) % dim
}

// shape carries the dimensions and index arithmetic shared by Buffer and View.
type shape struct {
	w, h, d int
	layout  Layout
}

func newShape(w, h, d int, layout Layout) shape {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if d <= 0 {
		d = 1
	}
	if layout != LayoutPlanar {
		layout = LayoutInterleaved
	}
	return shape{w: w, h: h, d: d, layout: layout}
}

// Width returns the number of columns.
func (s shape) Width() int { return s.w }

// Height returns the number of rows.
func (s shape) Height() int { return s.h }

// Depth returns the number of channels (planes).
func (s shape) Depth() int { return s.d }

// Layout reports the memory layout.
func (s shape) Layout() Layout { return s.layout }

// Len returns width*height*depth.
func (s shape) Len() int { return s.w * s.h * s.d }

// InBounds reports whether (x, y, z) addresses a slot.
func (s shape) InBounds(x, y, z int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h && z >= 0 && z < s.d
}

// Index returns the linear slice index for (x, y, z). Coordinates are not
// validated.
func (s shape) Index(x, y, z int) int {
	if s.layout == LayoutPlanar {
		return x + y*s.w + z*s.w*s.h
	}
	return y*s.w*s.d + x*s.d + z
}

// WrapX applies toroidal wrapping to a column coordinate.
func (s shape) WrapX(i int) int { return Wrap(s.w, i) }

// WrapY applies toroidal wrapping to a row coordinate.
func (s shape) WrapY(i int) int { return Wrap(s.h, i) }

// WrapZ applies wrapping to a channel coordinate.
func (s shape) WrapZ(i int) int { return Wrap(s.d, i) }

// cells implements the element accessors over a shape and a slice.
type cells[T any] struct {
	shape
	data []T
}

// Data exposes the backing slice so callers can read/write values directly.
func (c *cells[T]) Data() []T { return c.data }

// Get returns the value at (x, y, z) or ErrOutOfRange.
func (c *cells[T]) Get(x, y, z int) (T, error) {
	if !c.InBounds(x, y, z) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfRange, x, y, z, c.w, c.h, c.d)
	}
	return c.data[c.Index(x, y, z)], nil
}

// Set stores v at (x, y, z) or returns ErrOutOfRange.
func (c *cells[T]) Set(x, y, z int, v T) error {
	if !c.InBounds(x, y, z) {
		return fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfRange, x, y, z, c.w, c.h, c.d)
	}
	c.data[c.Index(x, y, z)] = v
	return nil
}

// At returns the value at (x, y, z). Out-of-range coordinates read slot 0.
func (c *cells[T]) At(x, y, z int) T {
	if !c.InBounds(x, y, z) {
		return c.data[0]
	}
	return c.data[c.Index(x, y, z)]
}

// Put stores v at (x, y, z). Out-of-range coordinates write slot 0.
func (c *cells[T]) Put(x, y, z int, v T) {
	if !c.InBounds(x, y, z) {
		c.data[0] = v
		return
	}
	c.data[c.Index(x, y, z)] = v
}

// WrapAt reads (x, y, z) after wrapping every coordinate into range.
func (c *cells[T]) WrapAt(x, y, z int) T {
	return c.data[c.Index(c.WrapX(x), c.WrapY(y), c.WrapZ(z))]
}

// WrapPut writes (x, y, z) after wrapping every coordinate into range.
func (c *cells[T]) WrapPut(x, y, z int, v T) {
	c.data[c.Index(c.WrapX(x), c.WrapY(y), c.WrapZ(z))] = v
}

// Clear sets every element to v.
func (c *cells[T]) Clear(v T) {
	for i := range c.data {
		c.data[i] = v
	}
}

// Reader is the read side shared by Buffer and View.
type Reader[T any] interface {
	Width() int
	Height() int
	Depth() int
	At(x, y, z int) T
}

// Buffer owns a dense width*height*depth block of T.
type Buffer[T any] struct {
	cells[T]
}

// NewBuffer allocates a zeroed buffer in the interleaved layout. Non-positive
// dimensions are clamped to 1.
func NewBuffer[T any](w, h, d int) *Buffer[T] {
	return NewBufferLayout[T](w, h, d, LayoutInterleaved)
}

// NewBufferLayout allocates a zeroed buffer with an explicit layout.
func NewBufferLayout[T any](w, h, d int, layout Layout) *Buffer[T] {
	s := newShape(w, h, d, layout)
	return &Buffer[T]{cells[T]{shape: s, data: make([]T, s.Len())}}
}

// Resize reallocates storage for the new dimensions. Previous contents are
// discarded.
func (b *Buffer[T]) Resize(w, h, d int) {
	b.shape = newShape(w, h, d, b.layout)
	b.data = make([]T, b.Len())
}
