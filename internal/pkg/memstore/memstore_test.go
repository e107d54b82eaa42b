package memstore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	s := New[string, int]()

	_, ok := s.Get("a")
	require.False(t, ok)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 3)

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Len())

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := New[string, string]().WithClock(func() time.Time { return now })

	s.Set("old", "x")
	now = now.Add(2 * time.Hour)
	s.Set("fresh", "y")

	assert.Equal(t, 0, s.Sweep(0), "zero ttl disables sweeping")
	assert.Equal(t, 1, s.Sweep(time.Hour))

	_, ok := s.Get("old")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}

func TestStore_Range(t *testing.T) {
	s := New[int, string]()
	s.Set(1, "a")
	s.Set(2, "b")

	seen := map[int]string{}
	s.Range(func(k int, v string) bool {
		seen[k] = v
		return true
	})
	assert.Equal(t, map[int]string{1: "a", 2: "b"}, seen)

	calls := 0
	s.Range(func(int, string) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestStore_LockSerializesKey(t *testing.T) {
	s := New[string, int]()
	s.Set("k", 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("k")
			defer unlock()
			v, _ := s.Get("k")
			s.Set("k", v+1)
		}()
	}
	wg.Wait()

	v, _ := s.Get("k")
	assert.Equal(t, 50, v)

	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	assert.Empty(t, s.locks, "locks are released after use")
}
