// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is matched by every *IndexOutOfRangeError.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotFound is returned by IndexOf when no element equals the requested value.
var ErrNotFound = errors.New("value not found")

// ErrEmptyContainer is returned when removing from a list with no elements.
var ErrEmptyContainer = errors.New("container is empty")

// ErrAllocationFailure is returned when a block cannot be allocated. The buffer or list that
// requested it is left exactly as it was before the call.
var ErrAllocationFailure = errors.New("allocation failure")

// IndexOutOfRangeError reports an index outside [0, Bound).
// Bound is the capacity for buffer operations and the length for list operations.
type IndexOutOfRangeError struct {
	Index int
	Bound int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Bound)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold for any IndexOutOfRangeError.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func outOfRange(index, bound int) error {
	return &IndexOutOfRangeError{Index: index, Bound: bound}
}
