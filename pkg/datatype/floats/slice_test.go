package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_BasicStats(t *testing.T) {
	s := New(1.0, 2.0, 3.0, 4.0)

	assert.Equal(t, 10.0, s.Sum())
	assert.Equal(t, 2.5, s.Mean())
	assert.Equal(t, 4.0, s.Max())
	assert.Equal(t, 1.0, s.Min())
	assert.InDelta(t, 1.25, s.Var(), 1e-12)
	assert.InDelta(t, 1.118033988749895, s.Std(), 1e-12)
}

func TestSlice_Diff(t *testing.T) {
	s := New(1.0, 3.0, 2.0)
	d := s.Diff()

	assert.Equal(t, Slice{2.0, -1.0}, d)
	assert.Equal(t, Slice{2.0, 1.0}, d.Abs())
}

func TestSlice_Index(t *testing.T) {
	s := New(1.0, 2.0, 3.0)

	assert.Equal(t, 3.0, s.Last())
	assert.Equal(t, 3.0, s.Index(0))
	assert.Equal(t, 1.0, s.Index(2))
	assert.Equal(t, 0.0, s.Index(3))
	assert.Equal(t, Slice{2.0, 3.0}, s.Tail(2))
}
