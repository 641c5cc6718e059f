package moving

// slot helpers shared by MovableArray and MovableVec

// wrapSlots marks every element of v present, positionally. The result has
// no spare capacity so it can be handed to MoveToArray directly.
func wrapSlots[T any](v []T) []Option[T] {
	slots := make([]Option[T], 0, len(v))
	for _, el := range v {
		slots = append(slots, Some(el))
	}
	return slots
}

// takeRange takes every index in [lo, hi) in ascending order, one output
// entry per index. Indices outside the slot bounds contribute an empty slot
// instead of panicking; single-index take stays strict.
func takeRange[T any](slots []Option[T], lo, hi int) []Option[T] {
	n := hi - lo
	if n < 0 {
		n = 0
	}
	out := make([]Option[T], 0, n)
	for i := lo; i < hi; i++ {
		if i >= 0 && i < len(slots) {
			out = append(out, slots[i].take())
		} else {
			out = append(out, None[T]())
		}
	}
	return out
}

// mapSlots applies f to every slot, empties included.
func mapSlots[T, R any](slots []Option[T], f func(Option[T]) Option[R]) []Option[R] {
	out := make([]Option[R], 0, len(slots))
	for _, s := range slots {
		out = append(out, f(s))
	}
	return out
}
