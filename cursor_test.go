package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Arithmetic(t *testing.T) {
	var vec Vector[int]
	require.NoError(t, vec.Append(10, 20, 30, 40, 50))

	begin, end := vec.Begin(), vec.End()
	assert.True(t, begin.Add(vec.Len()).Equal(end))
	assert.Equal(t, vec.Len(), end.Diff(begin))
	assert.Equal(t, -vec.Len(), begin.Diff(end))

	for _, c := range []Cursor[int]{begin, begin.Add(2), end} {
		for n := -2; n <= 2; n++ {
			assert.Equal(t, n, c.Add(n).Diff(c))
		}
	}

	it := begin.Next().Next()
	assert.Equal(t, 30, it.Get())
	assert.Equal(t, 20, it.Prev().Get())
	assert.Equal(t, 2, it.Offset())
	assert.True(t, it.Sub(2).Equal(begin))
	assert.Equal(t, 50, *it.At(2))
	assert.Equal(t, 10, *it.At(-2))
	assert.Equal(t, 50, end.Prev().Get())
}

func TestCursor_Compare(t *testing.T) {
	var vec Vector[int]
	require.NoError(t, vec.Append(1, 2, 3))

	a, b := vec.Begin(), vec.Begin().Add(1)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(b.Prev()))
}

func TestCursor_Write(t *testing.T) {
	var vec Vector[string]
	require.NoError(t, vec.Append("x", "y"))

	vec.Begin().Set("a")
	*vec.Begin().Next().Ptr() = "b"
	front, _ := vec.Front()
	back, _ := vec.Back()
	assert.Equal(t, "a", front)
	assert.Equal(t, "b", back)
}

func TestCursor_Traversal(t *testing.T) {
	var vec Vector[int]
	require.NoError(t, vec.Append(3, 1, 2))

	var got []int
	for it := vec.Begin(); !it.Equal(vec.End()); it = it.Next() {
		got = append(got, it.Get())
	}
	assert.Equal(t, []int{3, 1, 2}, got)

	got = got[:0]
	for it := vec.End(); it.Compare(vec.Begin()) > 0; {
		it = it.Prev()
		got = append(got, it.Get())
	}
	assert.Equal(t, []int{2, 1, 3}, got)
}

func TestCursor_EmptyVector(t *testing.T) {
	var vec Vector[int]
	assert.True(t, vec.Begin().Equal(vec.End()))
	assert.Equal(t, 0, vec.End().Diff(vec.Begin()))
}

func TestCursor_DifferentVectors(t *testing.T) {
	a, err := NewVector[int](2)
	require.NoError(t, err)
	b, err := NewVector[int](2)
	require.NoError(t, err)
	assert.False(t, a.Begin().Equal(b.Begin()))
}
