// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"unsafe"

	"github.com/pkg/errors"
)

// maxBlockBytes bounds a single block so that size computations never wrap.
const maxBlockBytes = ^uintptr(0) >> 1

// AllocateSlice creates a slice of type T with a given length and capacity,
// using the provided Arena for memory allocation.
// If the arena is non-nil, it returns a slice with memory allocated from the arena.
// Otherwise, it returns a slice using Go's built-in make function.
func AllocateSlice[T any](a Arena, len, cap int) []T {
	if a != nil {
		var x T
		bufSize := unsafe.Sizeof(x) * uintptr(cap)
		if ptr := (*T)(a.Alloc(bufSize, unsafe.Alignof(x))); ptr != nil {
			s := unsafe.Slice(ptr, cap)
			return s[:len]
		}
	}
	return make([]T, len, cap)
}

// allocBlock returns a zeroed block of exactly n elements.
// Requests that cannot be represented, or that the runtime refuses, fail with ErrAllocationFailure
// and never yield a partially initialized block.
func allocBlock[T any](a Arena, n int) (block []T, err error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocationFailure, "negative block size %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	var x T
	if size := unsafe.Sizeof(x); size > 0 && uintptr(n) > maxBlockBytes/size {
		return nil, errors.Wrapf(ErrAllocationFailure, "%d elements of %d bytes", n, size)
	}
	defer func() {
		if r := recover(); r != nil {
			block, err = nil, errors.Wrapf(ErrAllocationFailure, "%d elements: %v", n, r)
		}
	}()
	return AllocateSlice[T](a, n, n), nil
}

// freeBlock returns block to the arena it was drawn from. Heap blocks are left to the GC.
func freeBlock[T any](a Arena, block []T) {
	if a == nil || cap(block) == 0 {
		return
	}
	var x T
	a.Free(unsafe.Pointer(unsafe.SliceData(block)), unsafe.Sizeof(x)*uintptr(cap(block)))
}
