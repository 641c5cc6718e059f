package moving

// MovableVec is the size-unconstrained counterpart of MovableArray: a slice
// of slots whose elements can be moved out one at a time. The slot count is
// fixed once built.
type MovableVec[T any] struct {
	slots []Option[T]
}

// MovableVecFromSlice wraps every element of v as a present slot. Never
// fails: the container does not commit to an external size, so there is no
// length or capacity precondition.
func MovableVecFromSlice[T any](v []T) *MovableVec[T] {
	return &MovableVec[T]{slots: wrapSlots(v)}
}

// MovableVecFromArray wraps every element of a as a present slot. Consumes a.
func MovableVecFromArray[T any](a Array[T]) *MovableVec[T] {
	return &MovableVec[T]{slots: wrapSlots(a.elems)}
}

// Take moves the slot at index i out of the container, leaving it empty.
// Taking an already-empty slot yields None and never faults. An out-of-range
// i panics.
func (m *MovableVec[T]) Take(i int) Option[T] {
	return m.slots[i].take()
}

// At returns the slot at i without taking it. An out-of-range i panics.
func (m *MovableVec[T]) At(i int) Option[T] { return m.slots[i] }

// TakeRange takes every index in [lo, hi) in ascending order and collects
// the results positionally. Unlike Take, indices beyond the container bounds
// yield an empty slot instead of panicking.
func (m *MovableVec[T]) TakeRange(lo, hi int) []Option[T] {
	return takeRange(m.slots, lo, hi)
}

// TakeRangeArray is TakeRange followed by MoveToArray: it fails with
// LengthMismatchError when the range does not hold exactly size indices.
func (m *MovableVec[T]) TakeRangeArray(lo, hi, size int) (Array[Option[T]], error) {
	return MoveToArray(m.TakeRange(lo, hi), size)
}

// Len returns the current slot count.
func (m *MovableVec[T]) Len() int { return len(m.slots) }

// IntoSlots consumes the container and hands back every slot as-is, empties
// included. The container must not be used afterwards.
func (m *MovableVec[T]) IntoSlots() []Option[T] {
	slots := m.slots
	m.slots = nil
	return slots
}

// MapVec consumes m and builds a container of the same length by applying f
// to every slot, empty ones included. See MapArray.
func MapVec[T, R any](m *MovableVec[T], f func(Option[T]) Option[R]) *MovableVec[R] {
	slots := m.slots
	m.slots = nil
	return &MovableVec[R]{slots: mapSlots(slots, f)}
}
