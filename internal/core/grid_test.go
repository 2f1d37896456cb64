package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNonNegative(t *testing.T) {
	cases := []struct {
		dim, i, want int
	}{
		{5, 0, 0},
		{5, 4, 4},
		{5, 5, 0},
		{5, -1, 4},
		{5, -6, 4},
		{5, 12, 2},
		{1, -3, 0},
		{0, 7, 0},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Wrap(tc.dim, tc.i), "Wrap(%d, %d)", tc.dim, tc.i)
	}
}

func TestWrapIsPeriodic(t *testing.T) {
	for dim := 1; dim <= 7; dim++ {
		for i := -20; i <= 20; i++ {
			got := Wrap(dim, i)
			if got < 0 || got >= dim {
				t.Fatalf("Wrap(%d, %d) = %d out of range", dim, i, got)
			}
			if Wrap(dim, i+dim) != got {
				t.Fatalf("Wrap(%d, %d) not periodic", dim, i)
			}
		}
	}
}

func TestWrapExtremes(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 7, 64, 1000003} {
		d := uint64(dim)
		wantMax := int(uint64(math.MaxInt) % d)
		wantMin := int((d - (uint64(math.MaxInt)+1)%d) % d)
		assert.Equalf(t, wantMax, Wrap(dim, math.MaxInt), "Wrap(%d, MaxInt)", dim)
		assert.Equalf(t, wantMin, Wrap(dim, math.MinInt), "Wrap(%d, MinInt)", dim)
		assert.Equal(t, Wrap(dim, math.MaxInt), Wrap(dim, math.MaxInt-dim))
		assert.Equal(t, Wrap(dim, math.MinInt), Wrap(dim, math.MinInt+dim))
	}
}

func TestWrapPeriodicForLargeMultiples(t *testing.T) {
	big := math.MaxInt / 512
	for _, dim := range []int{1, 5, 13, 256} {
		for _, k := range []int{-big, -123457, -2, 2, 99991, big} {
			for i := -50; i <= 50; i += 7 {
				if got, want := Wrap(dim, i+k*dim), Wrap(dim, i); got != want {
					t.Fatalf("Wrap(%d, %d+%d*%d) = %d, want %d", dim, i, k, dim, got, want)
				}
			}
		}
	}
}

func TestIndexIsBijective(t *testing.T) {
	for _, layout := range []Layout{LayoutInterleaved, LayoutPlanar} {
		b := NewBufferLayout[int](4, 3, 2, layout)
		seen := make(map[int]bool, b.Len())
		for z := 0; z < b.Depth(); z++ {
			for y := 0; y < b.Height(); y++ {
				for x := 0; x < b.Width(); x++ {
					idx := b.Index(x, y, z)
					require.GreaterOrEqual(t, idx, 0)
					require.Less(t, idx, b.Len())
					require.Falsef(t, seen[idx], "%s: index %d reused", layout, idx)
					seen[idx] = true
				}
			}
		}
		assert.Len(t, seen, b.Len())
	}
}

func TestLayoutFormulas(t *testing.T) {
	gl := NewBufferLayout[int](4, 3, 2, LayoutInterleaved)
	assert.Equal(t, 2*4*2+1*2+1, gl.Index(1, 2, 1))

	cv := NewBufferLayout[int](4, 3, 2, LayoutPlanar)
	assert.Equal(t, 1+2*4+1*4*3, cv.Index(1, 2, 1))
}

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]Layout{
		"interleaved": LayoutInterleaved,
		"GL":          LayoutInterleaved,
		" planar ":    LayoutPlanar,
		"cv":          LayoutPlanar,
	} {
		got, ok := ParseLayout(in)
		require.Truef(t, ok, "ParseLayout(%q)", in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseLayout("hex")
	assert.False(t, ok)
}

func TestGetSetOutOfRange(t *testing.T) {
	b := NewBuffer[int](3, 3, 2)
	require.NoError(t, b.Set(2, 1, 1, 7))
	v, err := b.Get(2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	for _, c := range [][3]int{{-1, 0, 0}, {3, 0, 0}, {0, 3, 0}, {0, 0, 2}, {0, -1, 0}} {
		_, err := b.Get(c[0], c[1], c[2])
		assert.Truef(t, errors.Is(err, ErrOutOfRange), "Get%v: %v", c, err)
		err = b.Set(c[0], c[1], c[2], 1)
		assert.Truef(t, errors.Is(err, ErrOutOfRange), "Set%v: %v", c, err)
	}
	for _, v := range b.Data()[1:] {
		if v != 0 && v != 7 {
			t.Fatalf("out-of-range Set wrote into the buffer")
		}
	}
	assert.Equal(t, 0, b.Data()[0])
}

func TestAtPutFallBackToFirstSlot(t *testing.T) {
	b := NewBuffer[int](2, 2, 1)
	b.Put(5, 5, 0, 9)
	assert.Equal(t, 9, b.Data()[0])
	assert.Equal(t, 9, b.At(-1, 0, 0))
	assert.Equal(t, 9, b.At(0, 0, 0))
}

func TestWrapAccessors(t *testing.T) {
	b := NewBuffer[bool](4, 4, 2)
	b.WrapPut(-1, -1, 3, true)
	assert.True(t, b.At(3, 3, 1))
	assert.True(t, b.WrapAt(7, 7, -1))
	assert.False(t, b.WrapAt(0, 0, 1))
}

func TestDimensionsClampToOne(t *testing.T) {
	b := NewBuffer[uint8](0, -3, 0)
	assert.Equal(t, 1, b.Width())
	assert.Equal(t, 1, b.Height())
	assert.Equal(t, 1, b.Depth())
	assert.Len(t, b.Data(), 1)
}

func TestResizeDiscardsContents(t *testing.T) {
	b := NewBufferLayout[int](2, 2, 1, LayoutPlanar)
	b.Clear(5)
	b.Resize(3, 4, 2)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, 2, b.Depth())
	assert.Equal(t, LayoutPlanar, b.Layout())
	require.Len(t, b.Data(), 24)
	for _, v := range b.Data() {
		require.Zero(t, v)
	}
}
