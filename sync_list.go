// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"iter"
	"sync"
)

// SyncList wraps an ArrayList with a mutex so it can be shared between goroutines.
// Every operation holds the lock for its whole duration, including any resize.
//
// The lock covers this list only. When several lists draw from one arena and are used from
// different goroutines, wrap that arena with NewConcurrentArena.
type SyncList[T comparable] struct {
	mtx sync.Mutex
	l   *ArrayList[T]
}

// NewSyncList returns a SyncList that takes ownership of l.
func NewSyncList[T comparable](l *ArrayList[T]) *SyncList[T] {
	return &SyncList[T]{l: l}
}

// Len returns the number of elements.
func (s *SyncList[T]) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.Len()
}

// Cap returns the capacity of the underlying buffer.
func (s *SyncList[T]) Cap() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.Cap()
}

// IsEmpty reports whether the list has no elements.
func (s *SyncList[T]) IsEmpty() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.IsEmpty()
}

// InsertAt inserts value before the element at index.
func (s *SyncList[T]) InsertAt(index int, value T) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.InsertAt(index, value)
}

// PushFront inserts value at index 0.
func (s *SyncList[T]) PushFront(value T) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.PushFront(value)
}

// PushBack appends value.
func (s *SyncList[T]) PushBack(value T) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.PushBack(value)
}

// RemoveAt removes and returns the element at index.
func (s *SyncList[T]) RemoveAt(index int) (T, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.RemoveAt(index)
}

// PopFront removes and returns the first element.
func (s *SyncList[T]) PopFront() (T, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.PopFront()
}

// PopBack removes and returns the last element.
func (s *SyncList[T]) PopBack() (T, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.PopBack()
}

// Get returns the element at index.
func (s *SyncList[T]) Get(index int) (T, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.Get(index)
}

// Set replaces the element at index.
func (s *SyncList[T]) Set(index int, value T) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.Set(index, value)
}

// IndexOf returns the index of the first element equal to value.
func (s *SyncList[T]) IndexOf(value T) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.IndexOf(value)
}

// Count returns how many elements equal value.
func (s *SyncList[T]) Count(value T) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.Count(value)
}

// ToSlice returns a snapshot of the elements.
func (s *SyncList[T]) ToSlice() []T {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.ToSlice()
}

// All yields index/element pairs of a snapshot taken when iteration starts,
// so the loop body may call back into the list.
func (s *SyncList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.ToSlice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements of a snapshot taken when iteration starts.
func (s *SyncList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent SyncList with the same elements and capacity.
func (s *SyncList[T]) Clone() (*SyncList[T], error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	l, err := s.l.Clone()
	if err != nil {
		return nil, err
	}
	return NewSyncList(l), nil
}

// Clear removes every element and shrinks the list back to capacity 1.
func (s *SyncList[T]) Clear() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.Clear()
}

// Release gives the backing block back. The list must not be used afterwards.
func (s *SyncList[T]) Release() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.l.Release()
}

// String renders the elements as "[a, b, c]".
func (s *SyncList[T]) String() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.String()
}

// GoString renders the elements together with length and capacity, for %#v.
func (s *SyncList[T]) GoString() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.l.GoString()
}
