package moving

// MovableArray is a fixed-size block of slots whose elements can be moved out
// one at a time. A taken slot stays empty; the slot count never changes after
// construction.
type MovableArray[T any] struct {
	slots []Option[T]
}

// MovableArrayFromSlice wraps every element of v as a present slot,
// positionally. Same precondition as MoveToArray: len(v) and cap(v) must both
// equal size, since the container commits to exactly that many slots.
func MovableArrayFromSlice[T any](v []T, size int) (*MovableArray[T], error) {
	if len(v) != size || cap(v) != size {
		return nil, &LengthMismatchError{Expected: size, Got: len(v)}
	}
	return &MovableArray[T]{slots: wrapSlots(v)}, nil
}

// MovableArrayFromArray wraps every element of a as a present slot. Always
// succeeds; the container size is a.Len(). Consumes a.
func MovableArrayFromArray[T any](a Array[T]) *MovableArray[T] {
	return &MovableArray[T]{slots: wrapSlots(a.elems)}
}

// Take moves the slot at index i out of the container, leaving it empty.
// Taking an already-empty slot yields None and never faults. An out-of-range
// i panics.
func (m *MovableArray[T]) Take(i int) Option[T] {
	return m.slots[i].take()
}

// At returns the slot at i without taking it. An out-of-range i panics.
func (m *MovableArray[T]) At(i int) Option[T] { return m.slots[i] }

// TakeRange takes every index in [lo, hi) in ascending order and collects
// the results positionally. Unlike Take, indices beyond the container bounds
// yield an empty slot instead of panicking.
func (m *MovableArray[T]) TakeRange(lo, hi int) []Option[T] {
	return takeRange(m.slots, lo, hi)
}

// TakeRangeArray is TakeRange followed by MoveToArray: it fails with
// LengthMismatchError when the range does not hold exactly size indices.
func (m *MovableArray[T]) TakeRangeArray(lo, hi, size int) (Array[Option[T]], error) {
	return MoveToArray(m.TakeRange(lo, hi), size)
}

// Len returns the fixed slot count.
func (m *MovableArray[T]) Len() int { return len(m.slots) }

// IntoSlots consumes the container and hands back every slot as-is, empties
// included. The container must not be used afterwards.
func (m *MovableArray[T]) IntoSlots() Array[Option[T]] {
	slots := m.slots
	m.slots = nil
	return Array[Option[T]]{elems: slots}
}

// MapArray consumes m and builds a container of the same size by applying f
// to every slot, empty ones included: f cannot recover a taken T but may
// substitute any R. Occupancy of the result is whatever f returns per slot.
//
// A free function because Go methods cannot introduce the R type parameter.
func MapArray[T, R any](m *MovableArray[T], f func(Option[T]) Option[R]) *MovableArray[R] {
	slots := m.slots
	m.slots = nil
	return &MovableArray[R]{slots: mapSlots(slots, f)}
}
