// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// ArrayList is a growable sequence on top of a RawBuffer.
// Its capacity is always a power of two and never smaller than its length.
// It doubles when an insertion would fill the buffer and halves once fewer than half of the
// slots are in use.
//
// An ArrayList is not safe for concurrent use; see SyncList.
type ArrayList[T comparable] struct {
	buf    *RawBuffer[T]
	length int
}

// New returns an empty list with capacity 1.
// It panics if a single-element block cannot be allocated.
func New[T comparable](opts ...Option) *ArrayList[T] {
	buf, err := AllocateBuffer[T](1, opts...)
	if err != nil {
		panic(err)
	}
	return &ArrayList[T]{buf: buf}
}

// FromSlice returns a list holding a copy of items, with capacity NextPow2(len(items)).
func FromSlice[T comparable](items []T, opts ...Option) (*ArrayList[T], error) {
	buf, err := AllocateBuffer[T](NextPow2(len(items)), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "while allocating list for %d items", len(items))
	}
	copy(buf.data, items)
	return &ArrayList[T]{buf: buf, length: len(items)}, nil
}

// Len returns the number of elements.
func (l *ArrayList[T]) Len() int {
	return l.length
}

// Cap returns the capacity of the underlying buffer.
func (l *ArrayList[T]) Cap() int {
	return l.buf.Cap()
}

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[T]) IsEmpty() bool {
	return l.length == 0
}

// InsertAt inserts value before the element at index. index may equal Len() to append.
func (l *ArrayList[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.length {
		return outOfRange(index, l.length+1)
	}
	if c := l.buf.Cap(); l.length+1 >= c {
		if err := l.buf.ResizeTo(NextPow2(c + 1)); err != nil {
			return errors.Wrapf(err, "while growing capacity %d", c)
		}
	}
	if err := l.buf.ShiftFrom(index, 1); err != nil {
		return errors.Wrapf(err, "while opening a gap at %d", index)
	}
	if err := l.buf.Set(index, value); err != nil {
		return errors.Wrapf(err, "while inserting at %d", index)
	}
	l.length++
	return nil
}

// PushFront inserts value at index 0.
func (l *ArrayList[T]) PushFront(value T) error {
	return l.InsertAt(0, value)
}

// PushBack appends value.
func (l *ArrayList[T]) PushBack(value T) error {
	return l.InsertAt(l.length, value)
}

// RemoveAt removes and returns the element at index.
// If the buffer cannot be shrunk afterwards the list keeps its larger capacity.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyContainer
	}
	if index < 0 || index >= l.length {
		return zero, outOfRange(index, l.length)
	}
	out, err := l.buf.Get(index)
	if err != nil {
		return zero, errors.Wrapf(err, "while removing at %d", index)
	}
	if err := l.buf.ShiftFrom(index+1, -1); err != nil {
		return zero, errors.Wrapf(err, "while closing the gap at %d", index)
	}
	l.length--

	if c := l.buf.Cap(); l.length < c/2 {
		if err := l.buf.ResizeTo(max(c/2, 1)); err != nil {
			l.buf.lo.Warn("keeping capacity after failed shrink", "cap", c, "len", l.length, "err", err)
		}
	}
	return out, nil
}

// PopFront removes and returns the first element.
func (l *ArrayList[T]) PopFront() (T, error) {
	return l.RemoveAt(0)
}

// PopBack removes and returns the last element.
func (l *ArrayList[T]) PopBack() (T, error) {
	return l.RemoveAt(l.length - 1)
}

// Get returns the element at index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, outOfRange(index, l.length)
	}
	return l.buf.Get(index)
}

// Set replaces the element at index.
func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= l.length {
		return outOfRange(index, l.length)
	}
	return l.buf.Set(index, value)
}

// IndexOf returns the index of the first element equal to value.
func (l *ArrayList[T]) IndexOf(value T) (int, error) {
	for i, v := range l.buf.data[:l.length] {
		if v == value {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Count returns how many elements equal value.
func (l *ArrayList[T]) Count(value T) int {
	n := 0
	for _, v := range l.buf.data[:l.length] {
		if v == value {
			n++
		}
	}
	return n
}

// All yields index/element pairs from front to back.
// The list must not be modified during iteration.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.length; i++ {
			if !yield(i, l.buf.data[i]) {
				return
			}
		}
	}
}

// Values yields the elements from front to back.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice copies the elements onto the Go heap.
func (l *ArrayList[T]) ToSlice() []T {
	out := make([]T, l.length)
	copy(out, l.buf.data)
	return out
}

// Clone returns an independent list with the same elements and capacity.
func (l *ArrayList[T]) Clone() (*ArrayList[T], error) {
	buf, err := l.buf.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "while cloning list")
	}
	return &ArrayList[T]{buf: buf, length: l.length}, nil
}

// Clear removes every element and shrinks the list back to capacity 1.
func (l *ArrayList[T]) Clear() error {
	l.buf.Clear()
	l.length = 0
	if l.buf.Cap() == 1 {
		return nil
	}
	return l.buf.ResizeTo(1)
}

// Release gives the backing block back. The list must not be used afterwards.
func (l *ArrayList[T]) Release() {
	l.buf.Release()
	l.length = 0
}

// String renders the elements as "[a, b, c]".
func (l *ArrayList[T]) String() string {
	return render(l.buf.data[:l.length])
}

// GoString renders the elements together with length and capacity, for %#v.
func (l *ArrayList[T]) GoString() string {
	return fmt.Sprintf("ArrayList{len: %d, cap: %d, data: %s}", l.length, l.buf.Cap(), l.String())
}
