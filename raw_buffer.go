// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"fmt"
	"log/slog"
	"strings"
)

// RawBuffer owns one contiguous, fixed-capacity block of T.
// Every slot is zeroed when the block is allocated. The capacity only changes through ResizeTo,
// which replaces the block, and Release, which gives it up.
//
// A RawBuffer is not safe for concurrent use.
type RawBuffer[T any] struct {
	data  []T
	arena Arena
	lo    *slog.Logger
}

// AllocateBuffer returns a buffer of n zeroed slots.
// It fails with ErrAllocationFailure when n is negative or the block cannot be allocated.
func AllocateBuffer[T any](n int, opts ...Option) (*RawBuffer[T], error) {
	cfg := newConfig(opts)
	data, err := allocBlock[T](cfg.arena, n)
	if err != nil {
		return nil, err
	}
	return &RawBuffer[T]{
		data:  data,
		arena: cfg.arena,
		lo:    cfg.logger.With("component", "arraylist"),
	}, nil
}

// BufferFromSlice returns a buffer with capacity len(items) holding a copy of items.
func BufferFromSlice[T any](items []T, opts ...Option) (*RawBuffer[T], error) {
	b, err := AllocateBuffer[T](len(items), opts...)
	if err != nil {
		return nil, err
	}
	copy(b.data, items)
	return b, nil
}

// Cap returns the number of slots in the block.
func (b *RawBuffer[T]) Cap() int {
	return len(b.data)
}

// Get returns the element at i.
func (b *RawBuffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(b.data) {
		var zero T
		return zero, outOfRange(i, len(b.data))
	}
	return b.data[i], nil
}

// Set writes v at i. It never grows the buffer.
func (b *RawBuffer[T]) Set(i int, v T) error {
	if i < 0 || i >= len(b.data) {
		return outOfRange(i, len(b.data))
	}
	b.data[i] = v
	return nil
}

// ResizeTo replaces the block with a new zeroed block of n slots holding the first min(Cap(), n)
// elements of the old one. The old block is released once the new one is adopted.
// On failure the buffer keeps its old block.
func (b *RawBuffer[T]) ResizeTo(n int) error {
	block, err := allocBlock[T](b.arena, n)
	if err != nil {
		return err
	}
	copy(block, b.data)
	b.lo.Debug("resized buffer", "from", len(b.data), "to", n)
	b.adopt(block)
	return nil
}

// ShiftFrom moves the elements at [index, Cap()) by amount slots.
//
// A positive amount opens a zeroed gap [index, index+amount). Elements pushed past the end of the
// buffer are dropped, so callers grow the buffer first.
//
// A negative amount closes the |amount| slots right before index: the elements at [index, Cap())
// move to [index-|amount|, Cap()-|amount|) and the freed tail is zeroed. Whatever lived in the
// closed slots is overwritten, so read it before shifting.
//
// index must lie in [0, Cap()], and for a negative amount index must be at least |amount|.
// Zero is a no-op.
func (b *RawBuffer[T]) ShiftFrom(index, amount int) error {
	if amount == 0 {
		return nil
	}
	size := len(b.data)
	if index < 0 || index > size {
		return outOfRange(index, size+1)
	}

	if amount > 0 {
		if amount < size-index {
			// copy is a memmove: the overlapping right shift is safe.
			copy(b.data[index+amount:], b.data[index:size-amount])
			clear(b.data[index : index+amount])
		} else {
			clear(b.data[index:])
		}
	} else {
		if amount < -index {
			return outOfRange(index+amount, size+1)
		}
		k := -amount
		copy(b.data[index-k:], b.data[index:])
		clear(b.data[size-k:])
	}
	b.lo.Debug("shifted buffer", "index", index, "amount", amount, "cap", size)
	return nil
}

// Clear zeroes every slot.
func (b *RawBuffer[T]) Clear() {
	clear(b.data)
}

// Clone returns an independent buffer with the same capacity and contents,
// drawing its block from the same arena.
func (b *RawBuffer[T]) Clone() (*RawBuffer[T], error) {
	block, err := allocBlock[T](b.arena, len(b.data))
	if err != nil {
		return nil, err
	}
	copy(block, b.data)
	return &RawBuffer[T]{data: block, arena: b.arena, lo: b.lo}, nil
}

// ToSlice copies the whole block onto the Go heap.
func (b *RawBuffer[T]) ToSlice() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}

// Release gives the block back. The buffer is left with capacity 0,
// so calling Release again does nothing. A released buffer can be resized again.
func (b *RawBuffer[T]) Release() {
	if b.data == nil {
		return
	}
	b.adopt(nil)
}

// adopt swaps in block and releases the previous one. No reference to the old block survives.
func (b *RawBuffer[T]) adopt(block []T) {
	old := b.data
	b.data = block
	freeBlock(b.arena, old)
}

// String renders every slot as "[a, b, c]".
func (b *RawBuffer[T]) String() string {
	return render(b.data)
}

func render[T any](items []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
