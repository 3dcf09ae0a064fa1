// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"unsafe"
)

// Arena is an interface that describes a memory allocation arena a RawBuffer can draw its
// blocks from.
//
// Arena memory is not scanned by the garbage collector. Element types stored in arena-backed
// buffers must not contain Go pointers (no strings, slices, maps or pointers).
type Arena interface {
	// Alloc allocates zeroed memory of the given size and returns a pointer to it.
	// The alignment parameter specifies the alignment of the allocated memory.
	// A nil return tells the caller to fall back to the Go heap.
	// Alloc may panic when the runtime refuses the memory; the arena must be left unchanged when it does.
	Alloc(size, alignment uintptr) unsafe.Pointer

	// Free hands a block previously returned by Alloc back to the arena.
	// The arena decides whether the bytes become reusable right away or only after Reset.
	Free(ptr unsafe.Pointer, size uintptr)

	// Reset resets the arena's state without releasing the underlying memory.
	// After invoking this method any pointer previously returned by Alloc becomes immediately invalid.
	Reset()

	// Release releases the arena's underlying memory back to the system.
	// After invoking this method, the arena should not be used for further allocations.
	Release()

	// Len returns the total number of bytes currently allocated in the arena.
	Len() int

	// Cap returns the total capacity (maximum bytes) that can be allocated in the arena.
	Cap() int

	// Peak returns the high-water mark of Len. It survives Reset.
	Peak() int
}
