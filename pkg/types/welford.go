package types

import "math"

// Welford accumulates mean and variance incrementally using Welford's
// online algorithm, avoiding the catastrophic cancellation of the naive
// sum-of-squares update.
type Welford struct {
	count int
	mean  float64
	m2    float64
}

func (w *Welford) Add(v float64) {
	w.count++
	delta := v - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (v - w.mean)
}

func (w *Welford) Count() int {
	return w.count
}

func (w *Welford) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.mean
}

// Var returns the population variance.
func (w *Welford) Var() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.m2 / float64(w.count)
}

// SampleVar returns the sample variance (ddof = 1).
func (w *Welford) SampleVar() float64 {
	if w.count < 2 {
		return math.NaN()
	}
	return w.m2 / float64(w.count-1)
}

func (w *Welford) Std() float64 {
	return math.Sqrt(w.Var())
}

func (w *Welford) SampleStd() float64 {
	return math.Sqrt(w.SampleVar())
}

func (w *Welford) Reset() {
	w.count = 0
	w.mean = 0.0
	w.m2 = 0.0
}

// QueueStats runs a Welford pass over the retained elements of a queue.
// O(len) per call, but numerically identical for any insertion order of the
// same window, which keeps streaming output aligned with bulk recomputation.
func QueueStats(q *Queue) (w Welford) {
	for i := 0; i < q.Length(); i++ {
		w.Add(q.At(i))
	}
	return w
}
