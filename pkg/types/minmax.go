package types

import "math"

type extreme struct {
	seq   int
	value float64
}

// MinMaxQueue tracks the minimum and maximum of the last `window` pushed
// values with a pair of monotonic deques. Push and extreme reads are O(1)
// amortized, so window extremes never cost a full scan per tick.
//
// Ties are resolved toward the most recent occurrence, which also makes
// SinceMax/SinceMin report the distance to the latest extreme.
type MinMaxQueue struct {
	window int
	seq    int
	maxDeq []extreme
	minDeq []extreme
}

func NewMinMaxQueue(window int) *MinMaxQueue {
	return &MinMaxQueue{
		window: window,
		maxDeq: make([]extreme, 0, window),
		minDeq: make([]extreme, 0, window),
	}
}

func (q *MinMaxQueue) Update(v float64) {
	q.seq++

	for len(q.maxDeq) > 0 && q.maxDeq[len(q.maxDeq)-1].value <= v {
		q.maxDeq = q.maxDeq[:len(q.maxDeq)-1]
	}
	q.maxDeq = append(q.maxDeq, extreme{seq: q.seq, value: v})

	for len(q.minDeq) > 0 && q.minDeq[len(q.minDeq)-1].value >= v {
		q.minDeq = q.minDeq[:len(q.minDeq)-1]
	}
	q.minDeq = append(q.minDeq, extreme{seq: q.seq, value: v})

	// expire entries that fell out of the window
	expire := q.seq - q.window
	for len(q.maxDeq) > 0 && q.maxDeq[0].seq <= expire {
		q.maxDeq = q.maxDeq[1:]
	}
	for len(q.minDeq) > 0 && q.minDeq[0].seq <= expire {
		q.minDeq = q.minDeq[1:]
	}
}

// Count reports how many of the last pushes are inside the window.
func (q *MinMaxQueue) Count() int {
	if q.seq < q.window {
		return q.seq
	}
	return q.window
}

func (q *MinMaxQueue) Full() bool {
	return q.seq >= q.window
}

func (q *MinMaxQueue) Max() float64 {
	if len(q.maxDeq) == 0 {
		return math.NaN()
	}
	return q.maxDeq[0].value
}

func (q *MinMaxQueue) Min() float64 {
	if len(q.minDeq) == 0 {
		return math.NaN()
	}
	return q.minDeq[0].value
}

// SinceMax returns the number of pushes since the window maximum was seen,
// 0 when the latest value is the maximum.
func (q *MinMaxQueue) SinceMax() int {
	if len(q.maxDeq) == 0 {
		return 0
	}
	return q.seq - q.maxDeq[0].seq
}

// SinceMin returns the number of pushes since the window minimum was seen.
func (q *MinMaxQueue) SinceMin() int {
	if len(q.minDeq) == 0 {
		return 0
	}
	return q.seq - q.minDeq[0].seq
}

func (q *MinMaxQueue) Reset() {
	q.seq = 0
	q.maxDeq = q.maxDeq[:0]
	q.minDeq = q.minDeq[:0]
}
