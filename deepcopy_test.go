package stl

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchTest struct {
	id int32
}

func TestWritable(t *testing.T) {
	p := patchTest{id: 111}
	pv := reflect.ValueOf(&p).Elem()
	for i := 0; i < pv.NumField(); i++ {
		ft := pv.Type().Field(i)
		f := pv.Field(i)
		require.False(t, f.CanSet())

		pf := writable(f)
		require.True(t, pf.CanSet(), "field %s", ft.Name)

		var randInt = int64(rand.Int31())
		pf.SetInt(randInt)
		assert.Equal(t, randInt, pf.Int())
	}
}

type node struct {
	name  string
	next  *node
	tags  []string
	attrs map[string][]int
	extra any
	arr   [2]*int
}

func TestDeepCopy(t *testing.T) {
	one := 1
	src := &node{
		name:  "a",
		tags:  []string{"x", "y"},
		attrs: map[string][]int{"k": {1, 2}},
		extra: []int{7},
		arr:   [2]*int{&one, &one},
	}
	src.next = src

	var dst node
	require.NoError(t, DeepCopy(&dst, src))

	assert.Equal(t, "a", dst.name)
	assert.Equal(t, src.tags, dst.tags)
	assert.Equal(t, src.attrs, dst.attrs)
	assert.Equal(t, []int{7}, dst.extra)

	// Nothing mutable is shared with the source.
	dst.tags[0] = "changed"
	dst.attrs["k"][0] = 100
	dst.extra.([]int)[0] = 8
	*dst.arr[0] = 2
	assert.Equal(t, "x", src.tags[0])
	assert.Equal(t, 1, src.attrs["k"][0])
	assert.Equal(t, 7, src.extra.([]int)[0])
	assert.Equal(t, 1, one)

	// Shared pointers stay shared, cycles stay cycles.
	assert.Same(t, dst.arr[0], dst.arr[1])
	require.NotNil(t, dst.next)
	assert.Same(t, dst.next, dst.next.next)
	assert.NotSame(t, src, dst.next)
}

func TestDeepCopy_Nil(t *testing.T) {
	src := node{name: "b"}
	dst := node{tags: []string{"stale"}}
	require.NoError(t, DeepCopy(&dst, &src))
	assert.Nil(t, dst.tags)
	assert.Nil(t, dst.attrs)
	assert.Nil(t, dst.next)
}

func TestDeepCopy_Unsupported(t *testing.T) {
	type withChan struct {
		ch chan int
	}
	src := withChan{ch: make(chan int)}
	var dst withChan
	assert.Error(t, DeepCopy(&dst, &src))

	var empty withChan
	assert.NoError(t, DeepCopy(&dst, &empty))
}

func TestDeepTraits_ConstructionFailure(t *testing.T) {
	vec, err := NewVector[func()](0, WithTraits[func()](DeepTraits[func()]()))
	require.NoError(t, err)
	require.NoError(t, vec.Append(func() {}))

	_, err = vec.Clone()
	assert.True(t, errors.Is(err, ErrConstruction))
}
