package floats

import "math"

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

// Var returns the population variance of the slice.
func (s Slice) Var() float64 {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	mean := s.Mean()
	var acc float64
	for _, v := range s {
		d := v - mean
		acc += d * d
	}
	return acc / float64(length)
}

// Std returns the population standard deviation of the slice.
func (s Slice) Std() float64 {
	return math.Sqrt(s.Var())
}

func (s Slice) Diff() (values Slice) {
	for i, v := range s {
		if i == 0 {
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

func (s Slice) Abs() (values Slice) {
	for _, v := range s {
		values.Push(math.Abs(v))
	}
	return values
}

func (s Slice) MulScalar(x float64) (values Slice) {
	for _, v := range s {
		values.Push(v * x)
	}
	return values
}

func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

func (s Slice) Last() float64 {
	length := len(s)
	if length > 0 {
		return s[length-1]
	}
	return 0.0
}

// Index returns the i-th element counted from the end of the slice,
// Index(0) is the latest element.
func (s Slice) Index(i int) float64 {
	length := len(s)
	if length-i-1 < 0 || i < 0 {
		return 0.0
	}
	return s[length-i-1]
}

func (s Slice) Length() int {
	return len(s)
}
