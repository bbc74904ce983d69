package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxQueue_WindowExtremes(t *testing.T) {
	q := NewMinMaxQueue(3)
	assert.True(t, math.IsNaN(q.Max()))

	q.Update(5.0)
	q.Update(1.0)
	q.Update(3.0)
	assert.True(t, q.Full())
	assert.Equal(t, 5.0, q.Max())
	assert.Equal(t, 1.0, q.Min())

	// 5 expires
	q.Update(2.0)
	assert.Equal(t, 3.0, q.Max())
	assert.Equal(t, 1.0, q.Min())

	// 1 expires
	q.Update(2.5)
	assert.Equal(t, 3.0, q.Max())
	assert.Equal(t, 2.0, q.Min())
}

func TestMinMaxQueue_TiesPreferNewest(t *testing.T) {
	q := NewMinMaxQueue(5)
	for _, v := range []float64{4.0, 2.0, 4.0, 1.0} {
		q.Update(v)
	}

	assert.Equal(t, 4.0, q.Max())
	assert.Equal(t, 1, q.SinceMax())
	assert.Equal(t, 0, q.SinceMin())
}

func TestMinMaxQueue_Reset(t *testing.T) {
	q := NewMinMaxQueue(2)
	q.Update(1.0)
	q.Update(2.0)
	q.Reset()

	assert.Equal(t, 0, q.Count())
	assert.False(t, q.Full())
	assert.True(t, math.IsNaN(q.Min()))
}
