package blitmask

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every OutOfRangeError.
var ErrOutOfRange = errors.New("blitmask: flag out of range")

// OutOfRangeError is the panic value raised when a bit position does not fit
// the mask it is applied to.
type OutOfRangeError struct {
	Flag int
	Len  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("blitmask: flag %d out of range [0, %d)", e.Flag, e.Len)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

func checkFlag(flag, size int) {
	if flag < 0 || flag >= size {
		panic(&OutOfRangeError{Flag: flag, Len: size})
	}
}
