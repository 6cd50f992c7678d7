package store

import (
	"fmt"
	"sync"
	"testing"

	"gomoku/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.GetRoom("ABC123")
	assert.False(t, ok)

	r := &shared.Room{Code: "ABC123", PlayerName: "alice"}
	require.True(t, s.SaveIfAbsent(r))

	got, ok := s.GetRoom("ABC123")
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, 1, s.Len())

	s.DeleteRoom("ABC123")
	_, ok = s.GetRoom("ABC123")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				code := fmt.Sprintf("R%d-%d", i, j)
				assert.True(t, s.SaveIfAbsent(&shared.Room{Code: code}))
				_, ok := s.GetRoom(code)
				assert.True(t, ok)
			}
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 800, s.Len())
}

func TestSaveIfAbsent(t *testing.T) {
	s := NewMemoryStore()
	first := &shared.Room{Code: "ABC123", PlayerName: "alice"}
	second := &shared.Room{Code: "ABC123", PlayerName: "bob"}

	assert.True(t, s.SaveIfAbsent(first))
	assert.False(t, s.SaveIfAbsent(second))

	got, ok := s.GetRoom("ABC123")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestSaveIfAbsentConcurrent(t *testing.T) {
	s := NewMemoryStore()
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		stored int
	)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.SaveIfAbsent(&shared.Room{Code: "SAME01"}) {
				mu.Lock()
				stored++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, stored)
	assert.Equal(t, 1, s.Len())
}
