package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3phys/stl"
)

func newVector(t *testing.T, values ...int) *stl.Vector[int] {
	vec, err := stl.NewVector[int](0)
	require.NoError(t, err)
	require.NoError(t, vec.Append(values...))
	return vec
}

func collect(vec *stl.Vector[int]) []int {
	var out []int
	for _, v := range vec.Iter() {
		out = append(out, v)
	}
	return out
}

func TestSort(t *testing.T) {
	vec := newVector(t, 123, 13, 12, 1, 43, 3, 42, 11)
	assert.False(t, IsSorted(vec.Begin(), vec.End()))

	Sort(vec.Begin(), vec.End())
	assert.Equal(t, []int{1, 3, 11, 12, 13, 42, 43, 123}, collect(vec))
	assert.True(t, IsSorted(vec.Begin(), vec.End()))
}

func TestSort_Subrange(t *testing.T) {
	vec := newVector(t, 9, 5, 4, 3, 0)
	Sort(vec.Begin().Next(), vec.End().Prev())
	assert.Equal(t, []int{9, 3, 4, 5, 0}, collect(vec))
}

func TestSort_Empty(t *testing.T) {
	var vec stl.Vector[int]
	Sort(vec.Begin(), vec.End())
	assert.True(t, IsSorted(vec.Begin(), vec.End()))
	assert.Equal(t, 0, Distance(vec.Begin(), vec.End()))
}

func TestSortFunc(t *testing.T) {
	vec := newVector(t, 2, 7, 1, 8, 2, 8)
	SortFunc(vec.Begin(), vec.End(), func(a, b int) bool { return a > b })
	assert.Equal(t, []int{8, 8, 7, 2, 2, 1}, collect(vec))
}

func TestFind(t *testing.T) {
	vec := newVector(t, 4, 8, 15, 16, 23, 42)

	it := Find(vec.Begin(), vec.End(), 16)
	assert.Equal(t, 3, it.Offset())
	assert.Equal(t, 16, it.Get())

	assert.True(t, Find(vec.Begin(), vec.End(), 7).Equal(vec.End()))

	it = FindIf(vec.Begin(), vec.End(), func(v int) bool { return v > 20 })
	assert.Equal(t, 23, it.Get())
	assert.True(t, FindIf(vec.Begin(), vec.End(), func(v int) bool { return v < 0 }).Equal(vec.End()))
}

func TestLowerBound(t *testing.T) {
	vec := newVector(t, 1, 3, 3, 7, 9)
	first, last := vec.Begin(), vec.End()

	assert.Equal(t, 0, LowerBound(first, last, 0).Offset())
	assert.Equal(t, 1, LowerBound(first, last, 3).Offset())
	assert.Equal(t, 3, LowerBound(first, last, 4).Offset())
	assert.True(t, LowerBound(first, last, 10).Equal(last))
}

func TestForEach(t *testing.T) {
	vec := newVector(t, 1, 2, 3)
	ForEach(vec.Begin(), vec.End(), func(v *int) { *v *= 10 })
	assert.Equal(t, []int{10, 20, 30}, collect(vec))
	assert.Equal(t, 3, Distance(vec.Begin(), vec.End()))
}
