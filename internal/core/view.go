package core

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is returned by NewView when the backing slice cannot hold
// the requested dimensions.
var ErrShortBuffer = errors.New("core: backing slice too short")

// View addresses externally owned storage with the same accessors as Buffer.
// It never reallocates; writes go straight to the caller's slice.
type View[T any] struct {
	cells[T]
}

// NewView wraps data as a w*h*d grid. Dimensions are clamped like NewBuffer.
func NewView[T any](data []T, w, h, d int, layout Layout) (*View[T], error) {
	s := newShape(w, h, d, layout)
	if len(data) < s.Len() {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(data), s.Len())
	}
	return &View[T]{cells[T]{shape: s, data: data[:s.Len()]}}, nil
}

// View returns a borrowed view over the buffer's current storage. The view is
// invalidated by Resize.
func (b *Buffer[T]) View() *View[T] {
	return &View[T]{cells[T]{shape: b.shape, data: b.data}}
}
