package core

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: 4, Y: 6, Z: 3}
	assert.Equal(t, Vector{X: 5, Y: 8, Z: 6}, a.Add(b))
	assert.Equal(t, Vector{X: 3, Y: 4, Z: 0}, b.Sub(a))
	assert.Equal(t, Vector{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 5, a.Distance(b), 1e-12)
	assert.Equal(t, image.Pt(2, -1), Vec2(1.6, -1.4).Point())
}

func TestSegmentCoversEveryStep(t *testing.T) {
	got := Segment(Vec2(0, 0), Vec2(4, 0))
	want := []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segment mismatch (-want +got):\n%s", diff)
	}

	diag := Segment(Vec2(1, 1), Vec2(4, 5))
	assert.Equal(t, image.Pt(1, 1), diag[0])
	assert.Equal(t, image.Pt(4, 5), diag[len(diag)-1])
	for i := 1; i < len(diag); i++ {
		d := diag[i].Sub(diag[i-1])
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Fatalf("gap between %v and %v", diag[i-1], diag[i])
		}
	}
}

func TestSegmentSinglePoint(t *testing.T) {
	assert.Equal(t, []image.Point{{2, 3}}, Segment(Vec2(2, 3), Vec2(2.2, 3.1)))
}
