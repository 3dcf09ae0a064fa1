// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"unsafe"
)

type monotonicArena struct {
	buffers            []*monotonicBuffer
	peak               uintptr // high-water mark of len()
	minBufferSize      uintptr // minimum size for new buffers
	initialBufferCount int
}

type monotonicBuffer struct {
	ptr    unsafe.Pointer
	offset uintptr
	size   uintptr
}

func newMonotonicBuffer(size int) *monotonicBuffer {
	return &monotonicBuffer{size: uintptr(size)}
}

// init allocates the backing memory. It panics if the runtime refuses s.size bytes,
// leaving the buffer untouched.
func (s *monotonicBuffer) init() {
	if s.ptr == nil {
		buf := make([]byte, s.size)
		s.ptr = unsafe.Pointer(unsafe.SliceData(buf))
	}
}

func (s *monotonicBuffer) alloc(size, alignment uintptr) (unsafe.Pointer, bool) {
	s.init() // initial buffers are allocated lazily
	if size == 0 {
		// Never hand out a pointer past the end of a full buffer.
		return s.ptr, true
	}
	if alignment == 0 {
		alignment = 1
	}
	start := uintptr(s.ptr) + s.offset
	alignOffset := (alignment - start%alignment) % alignment
	allocSize := size + alignOffset

	if s.availableBytes() < allocSize {
		return nil, false
	}
	ptr := unsafe.Add(s.ptr, s.offset+alignOffset)
	s.offset += allocSize

	// Rewound blocks are handed out again, so every allocation is cleared.
	clear(unsafe.Slice((*byte)(ptr), size))

	return ptr, true
}

// free rewinds the bump offset when ptr is the most recent allocation of this buffer.
// It reports whether ptr belongs to the buffer at all.
func (s *monotonicBuffer) free(ptr unsafe.Pointer, size uintptr) bool {
	if s.ptr == nil {
		return false
	}
	base := uintptr(s.ptr)
	addr := uintptr(ptr)
	if addr < base || addr >= base+s.size {
		return false
	}
	if addr+size == base+s.offset {
		s.offset = addr - base
	}
	return true
}

func (s *monotonicBuffer) reset() {
	s.offset = 0
}

func (s *monotonicBuffer) release() {
	s.offset = 0
	s.ptr = nil
}

func (s *monotonicBuffer) availableBytes() uintptr {
	return s.size - s.offset
}

// NewMonotonicArena creates a bump-pointer arena.
// Without options it uses minBufferSize (32KB) buffers and creates 1 initial buffer.
//
// Free only reclaims the most recent allocation of a buffer; everything else is reclaimed by Reset.
// This suits RawBuffer, whose resize and shift allocate the new block right before freeing the old one,
// so repeated resizes of a single buffer reuse the space of the buffer's previous blocks only after Reset.
func NewMonotonicArena(opts ...MonotonicArenaOption) Arena {
	a := &monotonicArena{
		minBufferSize:      minBufferSize,
		initialBufferCount: 1,
	}

	for _, opt := range opts {
		opt(a)
	}

	for i := 0; i < a.initialBufferCount; i++ {
		a.buffers = append(a.buffers, newMonotonicBuffer(int(a.minBufferSize)))
	}
	return a
}

const (
	minBufferSize = 1024 * 32 // 32KB
)

// MonotonicArenaOption represents a configuration option for a monotonic arena.
type MonotonicArenaOption func(*monotonicArena)

// WithMinBufferSize sets the minimum buffer size for new buffers created by the arena.
func WithMinBufferSize(size int) MonotonicArenaOption {
	return func(a *monotonicArena) {
		a.minBufferSize = uintptr(size)
	}
}

// WithInitialBufferCount sets the number of initial buffers to create.
func WithInitialBufferCount(count int) MonotonicArenaOption {
	return func(a *monotonicArena) {
		a.initialBufferCount = count
	}
}

// Alloc satisfies the Arena interface.
func (a *monotonicArena) Alloc(size, alignment uintptr) unsafe.Pointer {
	for _, b := range a.buffers {
		if ptr, ok := b.alloc(size, alignment); ok {
			a.updatePeak()
			return ptr
		}
	}

	// No buffer has room. Oversize the new one by the alignment so the allocation always fits.
	newBufferSize := size + alignment
	if newBufferSize < a.minBufferSize {
		newBufferSize = a.minBufferSize
	}
	// Back the buffer before chaining it: if the runtime refuses the memory the
	// panic leaves the arena exactly as it was.
	b := newMonotonicBuffer(int(newBufferSize))
	b.init()
	a.buffers = append(a.buffers, b)

	ptr, ok := b.alloc(size, alignment)
	if !ok {
		panic("arraylist: failed to allocate on newly created arena buffer")
	}
	a.updatePeak()
	return ptr
}

// Free satisfies the Arena interface. Pointers the arena does not own are ignored.
func (a *monotonicArena) Free(ptr unsafe.Pointer, size uintptr) {
	if ptr == nil {
		return
	}
	for _, b := range a.buffers {
		if b.free(ptr, size) {
			return
		}
	}
}

// Reset satisfies the Arena interface.
func (a *monotonicArena) Reset() {
	for _, s := range a.buffers {
		s.reset()
	}
}

// Release satisfies the Arena interface.
func (a *monotonicArena) Release() {
	for _, s := range a.buffers {
		s.release()
	}
}

func (a *monotonicArena) updatePeak() {
	if l := a.len(); l > a.peak {
		a.peak = l
	}
}

func (a *monotonicArena) len() uintptr {
	var total uintptr
	for _, s := range a.buffers {
		total += s.offset
	}
	return total
}

// Len returns the total number of bytes currently allocated in the arena.
func (a *monotonicArena) Len() int {
	return int(a.len())
}

// Cap returns the total capacity (maximum bytes) that can be allocated in the arena.
func (a *monotonicArena) Cap() int {
	var total uintptr
	for _, s := range a.buffers {
		total += s.size
	}
	return int(total)
}

// Peak satisfies the Arena interface.
func (a *monotonicArena) Peak() int {
	return int(a.peak)
}
