package rawvec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMetricsEmpty(t *testing.T) {
	v := New[int64](Ops[int64]{})

	m := v.Metrics()
	require.Equal(t, VectorMetrics{}, m)
	require.Equal(t, 0.0, v.Utilization())
}

func TestMetrics(t *testing.T) {
	elem := int(unsafe.Sizeof(int64(0)))

	v := intVec64(1, 2, 3)
	require.NoError(t, v.Reserve(8))

	require.Equal(t, 3*elem, v.SizeInUse())
	require.Equal(t, 8*elem, v.CapacityBytes())
	require.InDelta(t, 3.0/8.0, v.Utilization(), 1e-9)

	m := v.Metrics()
	require.Equal(t, VectorMetrics{
		Len:           3,
		Cap:           8,
		SizeInUse:     3 * elem,
		CapacityBytes: 8 * elem,
		Utilization:   3.0 / 8.0,
	}, m)
}

func TestMetricsTrackMutation(t *testing.T) {
	v := intVec64(1, 2, 3, 4)
	inUse := v.SizeInUse()

	v.PopBack()
	require.Less(t, v.SizeInUse(), inUse)

	v.Release()
	require.Equal(t, 0, v.SizeInUse())
	require.Equal(t, 0, v.CapacityBytes())
}

func intVec64(vals ...int64) *Vector[int64] {
	v := New[int64](Ops[int64]{})
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			panic(err)
		}
	}
	return v
}
