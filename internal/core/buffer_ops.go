package core

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Axis names a buffer dimension.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Number is the set of element types the statistics helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ClearPlane sets every element whose coordinate on axis equals index to v.
// Indices outside the axis are ignored.
func (c *cells[T]) ClearPlane(axis Axis, index int, v T) {
	switch axis {
	case AxisX:
		if index < 0 || index >= c.w {
			return
		}
		for y := 0; y < c.h; y++ {
			for z := 0; z < c.d; z++ {
				c.data[c.Index(index, y, z)] = v
			}
		}
	case AxisY:
		if index < 0 || index >= c.h {
			return
		}
		for x := 0; x < c.w; x++ {
			for z := 0; z < c.d; z++ {
				c.data[c.Index(x, index, z)] = v
			}
		}
	case AxisZ:
		if index < 0 || index >= c.d {
			return
		}
		for y := 0; y < c.h; y++ {
			for x := 0; x < c.w; x++ {
				c.data[c.Index(x, y, index)] = v
			}
		}
	}
}

// Reformat rearranges the storage into layout, keeping every (x, y, z) value.
func (c *cells[T]) Reformat(layout Layout) {
	if layout != LayoutPlanar {
		layout = LayoutInterleaved
	}
	if layout == c.layout {
		return
	}
	src := make([]T, len(c.data))
	copy(src, c.data)
	from := c.shape
	c.layout = layout
	for z := 0; z < c.d; z++ {
		for y := 0; y < c.h; y++ {
			for x := 0; x < c.w; x++ {
				c.data[c.Index(x, y, z)] = src[from.Index(x, y, z)]
			}
		}
	}
}

// String dumps each plane as tab separated rows.
func (c *cells[T]) String() string {
	var sb strings.Builder
	for z := 0; z < c.d; z++ {
		fmt.Fprintf(&sb, "[_,_,%d]\n", z)
		for y := 0; y < c.h; y++ {
			sb.WriteByte('\t')
			for x := 0; x < c.w; x++ {
				fmt.Fprintf(&sb, "%v\t", c.data[c.Index(x, y, z)])
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Like returns a zeroed buffer with the same shape and layout.
func (b *Buffer[T]) Like() *Buffer[T] {
	return NewBufferLayout[T](b.w, b.h, b.d, b.layout)
}

// Clone returns a deep copy.
func (b *Buffer[T]) Clone() *Buffer[T] {
	out := b.Like()
	copy(out.data, b.data)
	return out
}

// Equal reports whether a and b have the same dimensions and values.
func Equal[T comparable](a, b Reader[T]) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Depth() != b.Depth() {
		return false
	}
	for z := 0; z < a.Depth(); z++ {
		for y := 0; y < a.Height(); y++ {
			for x := 0; x < a.Width(); x++ {
				if a.At(x, y, z) != b.At(x, y, z) {
					return false
				}
			}
		}
	}
	return true
}

// Convert maps every element of r through f into a new interleaved buffer.
func Convert[T, U any](r Reader[T], f func(T) U) *Buffer[U] {
	out := NewBuffer[U](r.Width(), r.Height(), r.Depth())
	for z := 0; z < r.Depth(); z++ {
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				out.data[out.Index(x, y, z)] = f(r.At(x, y, z))
			}
		}
	}
	return out
}

func plane[T Number](r Reader[T], z int) []float64 {
	vals := make([]float64, 0, r.Width()*r.Height())
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			vals = append(vals, float64(r.At(x, y, z)))
		}
	}
	return vals
}

// ChannelMeans returns the mean of each plane.
func ChannelMeans[T Number](r Reader[T]) []float64 {
	out := make([]float64, r.Depth())
	for z := range out {
		out[z] = stat.Mean(plane(r, z), nil)
	}
	return out
}

// ChannelVariances returns the population variance (divided by w*h) of each
// plane.
func ChannelVariances[T Number](r Reader[T]) []float64 {
	out := make([]float64, r.Depth())
	for z := range out {
		_, out[z] = stat.PopMeanVariance(plane(r, z), nil)
	}
	return out
}
