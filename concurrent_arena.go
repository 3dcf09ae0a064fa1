// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"sync"
	"unsafe"
)

type concurrentArena struct {
	mtx sync.Mutex
	a   Arena
}

// NewConcurrentArena returns an arena that is safe to be accessed concurrently
// from multiple goroutines. Lists that share one arena and are used from different
// goroutines, each behind its own SyncList, must draw from an arena wrapped this way.
func NewConcurrentArena(a Arena) Arena {
	return &concurrentArena{a: a}
}

// Alloc satisfies the Arena interface.
func (a *concurrentArena) Alloc(size, alignment uintptr) unsafe.Pointer {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return nil
	}
	return a.a.Alloc(size, alignment)
}

// Free satisfies the Arena interface.
func (a *concurrentArena) Free(ptr unsafe.Pointer, size uintptr) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return
	}
	a.a.Free(ptr, size)
}

// Reset satisfies the Arena interface.
func (a *concurrentArena) Reset() {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return
	}
	a.a.Reset()
}

// Release satisfies the Arena interface.
func (a *concurrentArena) Release() {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return
	}
	a.a.Release()
}

// Len returns the total number of bytes currently allocated in the arena.
func (a *concurrentArena) Len() int {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return 0
	}
	return a.a.Len()
}

// Cap returns the total capacity (maximum bytes) that can be allocated in the arena.
func (a *concurrentArena) Cap() int {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return 0
	}
	return a.a.Cap()
}

// Peak satisfies the Arena interface.
func (a *concurrentArena) Peak() int {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	if a.a == nil {
		return 0
	}
	return a.a.Peak()
}
