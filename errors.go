package moving

import "fmt"

// LengthMismatchError is returned whenever an operation that needs an exact
// length & capacity match (MoveToArray, fixed-size construction, range
// extraction into an Array) receives an input of the wrong size. It is always
// caller-correctable: rebuild the input with the exact size and retry.
type LengthMismatchError struct {
	Expected int
	Got      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("expected length & capacity %d, got %d", e.Expected, e.Got)
}
