package stl

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMemory(t *testing.T) {
	mem := NewMetricsMemory(NewBudget(64), "test")
	vec, err := NewVector[int64](0, WithMemory(mem))
	require.NoError(t, err)

	require.NoError(t, vec.Append(1, 2, 3))
	// 0 -> 2 -> 6 slots.
	assert.Equal(t, float64(2), testutil.ToFloat64(mem.allocateObjectsCounter))
	assert.Equal(t, float64(16+48), testutil.ToFloat64(mem.allocateBytesCounter))
	assert.Equal(t, float64(48), testutil.ToFloat64(mem.inuseBytesGauge))

	require.Error(t, vec.Reserve(100))
	assert.Equal(t, float64(1), testutil.ToFloat64(mem.failuresCounter))

	vec.Release()
	assert.Equal(t, float64(0), testutil.ToFloat64(mem.inuseBytesGauge))
}

func TestMetricsMemory_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	mem := NewMetricsMemory(nil, "test")
	require.NoError(t, reg.Register(mem))

	require.NoError(t, mem.Alloc(10))
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
