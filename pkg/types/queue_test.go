package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c2quant/tastream/pkg/datatype/floats"
)

func TestQueue_EvictsOldest(t *testing.T) {
	q := NewQueue(3)
	assert.False(t, q.Full())
	assert.Equal(t, 0, q.Length())

	q.Update(1.0)
	q.Update(2.0)
	assert.Equal(t, 2, q.Length())
	assert.False(t, q.Full())

	q.Update(3.0)
	assert.True(t, q.Full())

	q.Update(4.0)
	assert.Equal(t, 3, q.Length())
	assert.Equal(t, 4.0, q.Last())
	assert.Equal(t, 2.0, q.At(0))
	assert.Equal(t, 4.0, q.At(2))
	assert.Equal(t, 4.0, q.Index(0))
	assert.Equal(t, 2.0, q.Index(2))
	assert.Equal(t, floats.Slice{2, 3, 4}, q.Values())
}

func TestQueue_Stats(t *testing.T) {
	q := NewQueue(4)
	for _, v := range []float64{5, 1, 4, 2} {
		q.Update(v)
	}

	assert.Equal(t, 12.0, q.Sum())
	assert.Equal(t, 3.0, q.Mean())
	assert.Equal(t, 5.0, q.Max())
	assert.Equal(t, 1.0, q.Min())
}

func TestQueue_ClearReusesBuffer(t *testing.T) {
	q := NewQueue(2)
	q.Update(1.0)
	q.Update(2.0)
	q.Update(3.0)

	q.Clear()
	assert.Equal(t, 0, q.Length())
	assert.Equal(t, 0.0, q.Last())

	q.Update(9.0)
	assert.Equal(t, 9.0, q.Last())
	assert.Equal(t, 9.0, q.At(0))
}

func TestQueue_OutOfRange(t *testing.T) {
	q := NewQueue(2)
	q.Update(1.0)

	assert.Equal(t, 0.0, q.Index(1))
	assert.Equal(t, 0.0, q.At(-1))
}
