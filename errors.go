package sharedptr

import (
	"errors"
	"fmt"
)

// ErrAllocation is matched by every AllocationError through errors.Is
var ErrAllocation = errors.New("sharedptr: control block allocation failed")

// AllocationError is returned when the control block for a new managed
// object cannot be allocated. The object has already been destroyed.
type AllocationError struct {
	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrAllocation, e.Err)
}

// Unwrap ...
func (e *AllocationError) Unwrap() error {
	return e.Err
}

// Is ...
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}
