package moving

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestMovableVecFromSliceAnyCapacity(t *testing.T) {
	v := make([]string, 0, 10) // spare capacity is not an error here
	v = append(v, "x", "y", "z")
	m := MovableVecFromSlice(v)
	require.Equal(t, 3, m.Len())
	for i, want := range []string{"x", "y", "z"} {
		require.Equal(t, Some(want), m.Take(i))
	}
}

func TestMovableVecFromArray(t *testing.T) {
	arr, err := MoveToArray([]int{7, 8, 9}, 3)
	require.NoError(t, err)
	m := MovableVecFromArray(arr)
	require.Equal(t, 3, m.Len())
	require.Equal(t, Some(8), m.At(1))
	require.Equal(t, Some(8), m.Take(1))
}

func TestMovableVecTakeIdempotent(t *testing.T) {
	condition := func(v []uint8) bool {
		m := MovableVecFromSlice(v)
		for i := range v {
			first, ok := m.Take(i).Get()
			if !ok || first != v[i] {
				return false
			}
			if m.Take(i).IsSome() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestMovableVecTakePanics(t *testing.T) {
	m := MovableVecFromSlice([]int{1})
	require.Panics(t, func() { m.Take(1) })
}

func TestMovableVecTakeRange(t *testing.T) {
	m := MovableVecFromSlice([]int{10, 11, 12, 13, 14})

	got := m.TakeRange(1, 4)
	require.Equal(t, []Option[int]{Some(11), Some(12), Some(13)}, got)
	for i := 1; i < 4; i++ {
		require.True(t, m.Take(i).IsNone())
	}
	require.Equal(t, Some(10), m.Take(0))

	got = m.TakeRange(4, 7)
	require.Len(t, got, 3)
	require.Equal(t, Some(14), got[0])
	require.True(t, got[1].IsNone())
	require.True(t, got[2].IsNone())
}

func TestMovableVecTakeRangeArray(t *testing.T) {
	m := MovableVecFromSlice([]int{10, 11, 12, 13, 14})
	arr, err := m.TakeRangeArray(2, 5, 3)
	require.NoError(t, err)
	require.Equal(t, 3, arr.Len())
	require.Equal(t, Some(12), arr.At(0))
	require.Equal(t, Some(14), arr.At(2))

	_, err = m.TakeRangeArray(0, 2, 3)
	var lm *LengthMismatchError
	require.ErrorAs(t, err, &lm)
	require.Equal(t, 3, lm.Expected)
	require.Equal(t, 2, lm.Got)
}

func TestMovableVecIntoSlots(t *testing.T) {
	m := MovableVecFromSlice([]string{"a", "b", "c"})
	m.Take(0)
	slots := m.IntoSlots()
	require.Len(t, slots, 3)
	require.True(t, slots[0].IsNone())
	require.Equal(t, Some("b"), slots[1])
	require.Equal(t, Some("c"), slots[2])
}

func TestMapVec(t *testing.T) {
	m := MovableVecFromSlice([]int{1, 2, 3})
	m.Take(2)

	mapped := MapVec(m, func(o Option[int]) Option[int] {
		if v, ok := o.Get(); ok {
			return Some(v * 10)
		}
		return None[int]()
	})
	require.Equal(t, 3, mapped.Len())
	require.Equal(t, Some(10), mapped.Take(0))
	require.Equal(t, Some(20), mapped.Take(1))
	require.True(t, mapped.Take(2).IsNone())
}

func TestMapVecPreservesLength(t *testing.T) {
	condition := func(v []int32) bool {
		m := MovableVecFromSlice(v)
		mapped := MapVec(m, func(o Option[int32]) Option[int32] { return o })
		return mapped.Len() == len(v)
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}
