// SPDX-License-Identifier: Apache-2.0

package arraylist

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncListConcurrentPush(t *testing.T) {
	s := NewSyncList(New[int]())

	const numGoroutines = 10
	const pushesPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func() {
			defer wg.Done()
			for j := 0; j < pushesPerGoroutine; j++ {
				v := g*pushesPerGoroutine + j
				if j%2 == 0 {
					require.NoError(t, s.PushBack(v))
				} else {
					require.NoError(t, s.PushFront(v))
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, numGoroutines*pushesPerGoroutine, s.Len())
	require.True(t, isPow2(s.Cap()))

	got := s.ToSlice()
	slices.Sort(got)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestSyncListConcurrentPushPop(t *testing.T) {
	s := NewSyncList(New[int]())

	var wg sync.WaitGroup
	wg.Add(4)
	for g := 0; g < 4; g++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				require.NoError(t, s.PushBack(j))
				_, err := s.PopFront()
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 0, s.Len())
	_, err := s.PopBack()
	require.ErrorIs(t, err, ErrEmptyContainer)
}

func TestSyncListOperations(t *testing.T) {
	l, err := FromSlice([]int{1, 2, 3})
	require.NoError(t, err)
	s := NewSyncList(l)

	require.NoError(t, s.InsertAt(1, 5))
	require.NoError(t, s.Set(0, 4))
	v, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	i, err := s.IndexOf(5)
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.Equal(t, 1, s.Count(3))

	v, err = s.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, "[4, 2, 3]", s.String())

	// The loop body may call back into the list
	for v := range s.Values() {
		require.NoError(t, s.PushBack(v))
	}
	require.Equal(t, []int{4, 2, 3, 4, 2, 3}, s.ToSlice())

	s.Release()
	require.Equal(t, 0, s.Len())
}

func TestSyncListSnapshotsAndCopies(t *testing.T) {
	s := NewSyncList(New[string]())
	require.True(t, s.IsEmpty())

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, s.PushBack(v))
	}
	require.False(t, s.IsEmpty())

	for i, v := range s.All() {
		if i == 0 {
			require.NoError(t, s.PushFront("_"))
		}
		require.NotEqual(t, "_", v)
	}
	require.Equal(t, []string{"_", "a", "b", "c"}, s.ToSlice())

	c, err := s.Clone()
	require.NoError(t, err)
	require.NoError(t, s.Clear())
	require.Equal(t, 0, s.Len())
	require.Equal(t, 1, s.Cap())
	require.Equal(t, `ArrayList{len: 4, cap: 8, data: [_, a, b, c]}`, c.GoString())
}
