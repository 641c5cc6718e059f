package moving

// Option is a single slot: either present (Some) or empty (None).
// It is comparable whenever T is.
type Option[T any] struct {
	val T
	ok  bool
}

// Some wraps v in a present slot.
func Some[T any](v T) Option[T] { return Option[T]{val: v, ok: true} }

// None is an empty slot of type T.
func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the slot's value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.val, o.ok }

// MustGet returns the slot's value, panicking on an empty slot.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("moving: empty slot")
	}
	return o.val
}

// take moves the value out and leaves the slot empty. The vacated slot is
// zeroed so the container no longer retains the moved value.
func (o *Option[T]) take() Option[T] {
	out := *o
	*o = Option[T]{}
	return out
}
