package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	a := Slice{1, 2, 3, 4, 5}
	b := Slice{1, 2, 3, 4, 5}
	c := a.Add(b)
	assert.Equal(t, Slice{2.0, 4.0, 6.0, 8.0, 10.0}, c)
}

func TestSub(t *testing.T) {
	a := Slice{1, 2, 3, 4, 5}
	b := Slice{1, 2, 3, 4, 5}
	c := a.Sub(b)
	assert.Equal(t, Slice{.0, .0, .0, .0, .0}, c)
}

func TestMulScalar(t *testing.T) {
	a := Slice{1, 2, 3}
	assert.Equal(t, Slice{2, 4, 6}, a.MulScalar(2))
}

func TestTail(t *testing.T) {
	a := Slice{1, 2, 3, 4, 5}
	assert.Equal(t, Slice{4, 5}, a.Tail(2))
	assert.Equal(t, Slice{1, 2, 3, 4, 5}, a.Tail(10))
}

func TestDiff(t *testing.T) {
	a := Slice{1, 3, 2, 6}
	d := a.Diff()
	assert.Equal(t, Slice{0, 2, -1, 4}, d)
	assert.Equal(t, Slice{0, 2, 0, 4}, d.PositiveValuesOrZero())
	assert.Equal(t, Slice{0, 0, -1, 0}, d.NegativeValuesOrZero())
	assert.Equal(t, Slice{0, 2, 1, 4}, d.Abs())
}

func TestPush(t *testing.T) {
	var a Slice
	a.Push(1)
	a.Push(2)
	assert.Equal(t, Slice{1, 2}, a)
}

func TestMeanSumMinMax(t *testing.T) {
	a := Slice{2, 4, 6}
	assert.Equal(t, 12.0, a.Sum())
	assert.Equal(t, 4.0, a.Mean())
	assert.Equal(t, 2.0, a.Min())
	assert.Equal(t, 6.0, a.Max())
	assert.Equal(t, 6.0, a.Last())
}
