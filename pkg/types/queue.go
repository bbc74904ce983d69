package types

import (
	"math"

	"github.com/c2quant/tastream/pkg/datatype/floats"
)

// Queue is a fixed-capacity ring buffer of float64 values. Once full, every
// push evicts the oldest element. Pushes and single-element reads are O(1);
// the backing array is allocated once and reused across Clear.
type Queue struct {
	values []float64
	size   int
	head   int // position of the oldest element
	count  int
}

func NewQueue(size int) *Queue {
	return &Queue{
		values: make([]float64, size),
		size:   size,
	}
}

// Update appends v, evicting the oldest element when the queue is full.
func (q *Queue) Update(v float64) {
	if q.count < q.size {
		q.values[(q.head+q.count)%q.size] = v
		q.count++
		return
	}
	q.values[q.head] = v
	q.head = (q.head + 1) % q.size
}

func (q *Queue) Length() int {
	return q.count
}

func (q *Queue) Size() int {
	return q.size
}

func (q *Queue) Full() bool {
	return q.count == q.size
}

func (q *Queue) Last() float64 {
	if q.count == 0 {
		return 0.0
	}
	return q.values[(q.head+q.count-1)%q.size]
}

// Index returns the i-th element counted back from the newest one,
// Index(0) is the latest pushed value. Out of range reads return 0.
func (q *Queue) Index(i int) float64 {
	if i < 0 || i >= q.count {
		return 0.0
	}
	return q.values[(q.head+q.count-1-i)%q.size]
}

// At returns the i-th retained element in insertion order, At(0) is the
// oldest one. Out of range reads return 0.
func (q *Queue) At(i int) float64 {
	if i < 0 || i >= q.count {
		return 0.0
	}
	return q.values[(q.head+i)%q.size]
}

func (q *Queue) Sum() (sum float64) {
	for i := 0; i < q.count; i++ {
		sum += q.values[(q.head+i)%q.size]
	}
	return sum
}

func (q *Queue) Mean() float64 {
	if q.count == 0 {
		return 0.0
	}
	return q.Sum() / float64(q.count)
}

func (q *Queue) Max() float64 {
	m := math.Inf(-1)
	for i := 0; i < q.count; i++ {
		m = math.Max(m, q.values[(q.head+i)%q.size])
	}
	return m
}

func (q *Queue) Min() float64 {
	m := math.Inf(1)
	for i := 0; i < q.count; i++ {
		m = math.Min(m, q.values[(q.head+i)%q.size])
	}
	return m
}

// Values copies the retained elements out in insertion order.
func (q *Queue) Values() floats.Slice {
	out := make(floats.Slice, 0, q.count)
	for i := 0; i < q.count; i++ {
		out = append(out, q.values[(q.head+i)%q.size])
	}
	return out
}

// Clear drops all elements without releasing the backing array.
func (q *Queue) Clear() {
	q.head = 0
	q.count = 0
}
