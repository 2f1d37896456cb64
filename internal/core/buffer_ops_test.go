package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillSequence(b *Buffer[int]) {
	n := 0
	for z := 0; z < b.Depth(); z++ {
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				b.Put(x, y, z, n)
				n++
			}
		}
	}
}

func TestViewSharesStorage(t *testing.T) {
	b := NewBuffer[int](3, 2, 2)
	v := b.View()
	v.Put(1, 1, 1, 42)
	assert.Equal(t, 42, b.At(1, 1, 1))

	data := make([]int, 12)
	ext, err := NewView(data, 3, 2, 2, LayoutPlanar)
	require.NoError(t, err)
	ext.Put(2, 1, 1, 8)
	assert.Equal(t, 8, data[2+1*3+1*6])
}

func TestNewViewShortBuffer(t *testing.T) {
	_, err := NewView(make([]byte, 5), 2, 2, 2, LayoutInterleaved)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortBuffer))
}

func TestReformatPreservesValues(t *testing.T) {
	b := NewBuffer[int](4, 3, 2)
	fillSequence(b)
	want := b.Clone()

	b.Reformat(LayoutPlanar)
	assert.Equal(t, LayoutPlanar, b.Layout())
	assert.True(t, Equal[int](b, want))

	b.Reformat(LayoutInterleaved)
	if diff := cmp.Diff(want.Data(), b.Data()); diff != "" {
		t.Fatalf("round trip changed storage (-want +got):\n%s", diff)
	}
}

func TestClearPlane(t *testing.T) {
	b := NewBuffer[int](3, 3, 2)
	b.Clear(1)
	b.ClearPlane(AxisY, 1, 0)
	b.ClearPlane(AxisZ, 1, 0)
	b.ClearPlane(AxisX, 9, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 1
			if y == 1 {
				want = 0
			}
			assert.Equalf(t, want, b.At(x, y, 0), "(%d,%d,0)", x, y)
			assert.Zero(t, b.At(x, y, 1))
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBuffer[int](2, 2, 1)
	c := b.Clone()
	c.Put(0, 0, 0, 3)
	assert.Zero(t, b.At(0, 0, 0))

	l := b.Like()
	assert.Equal(t, b.Len(), l.Len())
}

func TestChannelStatistics(t *testing.T) {
	b := NewBuffer[float64](2, 2, 2)
	for i, v := range []float64{1, 2, 3, 4} {
		b.Put(i%2, i/2, 0, v)
		b.Put(i%2, i/2, 1, 10)
	}
	assert.InDeltaSlice(t, []float64{2.5, 10}, ChannelMeans[float64](b), 1e-9)
	assert.InDeltaSlice(t, []float64{1.25, 0}, ChannelVariances[float64](b), 1e-9)
}

func TestConvert(t *testing.T) {
	b := NewBufferLayout[bool](2, 1, 1, LayoutPlanar)
	b.Put(1, 0, 0, true)
	u := Convert[bool, uint8](b, func(v bool) uint8 {
		if v {
			return 1
		}
		return 0
	})
	assert.Equal(t, LayoutInterleaved, u.Layout())
	assert.Equal(t, []uint8{0, 1}, u.Data())
}

func TestStringDumpsPlanes(t *testing.T) {
	b := NewBuffer[int](2, 1, 2)
	out := b.String()
	assert.Contains(t, out, "[_,_,0]")
	assert.Contains(t, out, "[_,_,1]")
}
