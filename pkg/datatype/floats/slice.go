package floats

import "math"

type Slice []float64

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Last() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s[len(s)-1]
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

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s.Sum() / float64(len(s))
}

// Tail returns the last size elements as a copy.
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

// Diff returns the first-order differences, with a leading zero so the
// result keeps the input length.
func (s Slice) Diff() Slice {
	var values Slice
	for i, v := range s {
		if i == 0 {
			values.Push(0)
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

func (s Slice) PositiveValuesOrZero() Slice {
	var values Slice
	for _, v := range s {
		values.Push(math.Max(v, 0))
	}
	return values
}

func (s Slice) NegativeValuesOrZero() Slice {
	var values Slice
	for _, v := range s {
		values.Push(math.Min(v, 0))
	}
	return values
}

func (s Slice) Abs() Slice {
	var values Slice
	for _, v := range s {
		values.Push(math.Abs(v))
	}
	return values
}

func (s Slice) Add(b Slice) (c Slice) {
	for i, v := range s {
		c = append(c, v+b[i])
	}
	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	for i, v := range s {
		c = append(c, v-b[i])
	}
	return c
}

func (s Slice) MulScalar(x float64) (c Slice) {
	for _, v := range s {
		c = append(c, v*x)
	}
	return c
}
