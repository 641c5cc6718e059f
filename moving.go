// Package moving makes elements of a slice or an Array movable: values are
// moved out of their container by position instead of copied, so the element
// type never needs to be duplicable or have a usable zero value.
//
// MoveToArray turns a slice whose length and capacity both equal size into an
// Array of exactly that size, reusing the backing memory without copying.
// MovableArray and MovableVec wrap a sequence in per-position slots; Take
// moves a single element out and leaves the slot empty, while the rest of the
// container stays usable.
package moving

// Source is a value that can be moved into a slot container: either a plain
// slice (FromSlice) or an Array (FromArray).
type Source[T any] interface {
	movable() *MovableVec[T]
	nmovable(size int) (*MovableArray[T], error)
}

type sliceSource[T any] struct{ v []T }

type arraySource[T any] struct{ a Array[T] }

// FromSlice presents v as a container source. Ownership of the elements moves
// with it; v must not be used after the source has been consumed.
func FromSlice[T any](v []T) Source[T] { return sliceSource[T]{v: v} }

// FromArray presents a as a container source.
func FromArray[T any](a Array[T]) Source[T] { return arraySource[T]{a: a} }

func (s sliceSource[T]) movable() *MovableVec[T] { return MovableVecFromSlice(s.v) }

func (s sliceSource[T]) nmovable(size int) (*MovableArray[T], error) {
	return MovableArrayFromSlice(s.v, size)
}

func (s arraySource[T]) movable() *MovableVec[T] { return MovableVecFromArray(s.a) }

func (s arraySource[T]) nmovable(size int) (*MovableArray[T], error) {
	if s.a.Len() != size {
		return nil, &LengthMismatchError{Expected: size, Got: s.a.Len()}
	}
	return MovableArrayFromArray(s.a), nil
}

// Movable moves src into a MovableVec. Never fails: the dynamic flavor does
// not commit to an external size.
func Movable[T any](src Source[T]) *MovableVec[T] { return src.movable() }

// NMovable moves src into a MovableArray of exactly size slots. A slice
// source must satisfy the MoveToArray precondition; an Array source must have
// a.Len() == size.
func NMovable[T any](src Source[T], size int) (*MovableArray[T], error) {
	return src.nmovable(size)
}
