package moving

// Array is an owned block of exactly Len elements. Unlike a slice it has no
// spare capacity: len == cap == size always holds for the backing memory, and
// the size never changes for the value's lifetime.
type Array[T any] struct {
	elems []T
}

// MoveToArray reinterprets v as an Array of exactly size elements without
// copying. It fails unless len(v) == size and cap(v) == size: on success the
// Array adopts v's backing memory as-is, so any spare capacity would end up
// aliased behind the caller's back.
//
// Ownership of the elements transfers to the result. The caller must not
// read, write, or retain v after a successful call.
func MoveToArray[T any](v []T, size int) (Array[T], error) {
	if len(v) != size || cap(v) != size {
		return Array[T]{}, &LengthMismatchError{Expected: size, Got: len(v)}
	}
	return Array[T]{elems: v}, nil
}

// Len returns the fixed element count.
func (a Array[T]) Len() int { return len(a.elems) }

// At returns the element at i. An out-of-range i panics.
func (a Array[T]) At(i int) T { return a.elems[i] }

// Slice exposes the Array's backing memory. The result aliases the Array and
// must not be appended to.
func (a Array[T]) Slice() []T { return a.elems }
