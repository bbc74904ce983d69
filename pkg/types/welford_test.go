package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelford_MatchesTwoPass(t *testing.T) {
	values := []float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}

	var w Welford
	for _, v := range values {
		w.Add(v)
	}

	assert.Equal(t, len(values), w.Count())
	assert.InDelta(t, 5.0, w.Mean(), 1e-12)
	assert.InDelta(t, 4.0, w.Var(), 1e-12)
	assert.InDelta(t, 2.0, w.Std(), 1e-12)
	assert.InDelta(t, 32.0/7.0, w.SampleVar(), 1e-12)
}

func TestWelford_Degenerate(t *testing.T) {
	var w Welford
	assert.True(t, math.IsNaN(w.Mean()))
	assert.True(t, math.IsNaN(w.Var()))

	w.Add(3.0)
	assert.Equal(t, 3.0, w.Mean())
	assert.Equal(t, 0.0, w.Var())
	assert.True(t, math.IsNaN(w.SampleVar()))
}

func TestWelford_Reset(t *testing.T) {
	var w Welford
	w.Add(1.0)
	w.Add(2.0)
	w.Reset()

	assert.Equal(t, 0, w.Count())

	w.Add(10.0)
	assert.Equal(t, 10.0, w.Mean())
}

func TestQueueStats(t *testing.T) {
	q := NewQueue(3)
	for _, v := range []float64{100, 1, 2, 3} {
		q.Update(v)
	}

	w := QueueStats(q)
	assert.Equal(t, 3, w.Count())
	assert.InDelta(t, 2.0, w.Mean(), 1e-12)
	assert.InDelta(t, 2.0/3.0, w.Var(), 1e-12)
}
