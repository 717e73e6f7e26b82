package id

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// --- UUID Tests ---

func TestUUID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := UUID()
		assert.Regexp(t, uuidV4, id)
		assert.Len(t, id, 36)
	}
}

func TestUUID_Concurrent(t *testing.T) {
	const goroutines = 20
	const perGoroutine = 50

	results := make(chan string, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				results <- UUID()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, goroutines*perGoroutine)
	for id := range results {
		require.False(t, seen[id], "duplicate UUID %s", id)
		seen[id] = true
	}
}

// --- Short Tests ---

func TestShort(t *testing.T) {
	id := Short()
	assert.Regexp(t, `^[0-9a-f]{16}$`, id)
	assert.NotEqual(t, id, Short())
}

// --- Source Tests ---

func TestSource_Deterministic(t *testing.T) {
	var seed [32]byte
	seed[0] = 42

	a := NewSource(rand.NewChaCha8(seed))
	b := NewSource(rand.NewChaCha8(seed))

	for i := 0; i < 10; i++ {
		x, err := a.UUID()
		require.NoError(t, err)
		y, err := b.UUID()
		require.NoError(t, err)
		assert.Equal(t, x, y)
		assert.Regexp(t, uuidV4, x)
	}
}

func TestSource_NilReader(t *testing.T) {
	s := NewSource(nil)
	id, err := s.UUID()
	require.NoError(t, err)
	assert.Regexp(t, uuidV4, id)
}

type failingReader struct{}

var errEntropy = errors.New("entropy unavailable")

func (failingReader) Read([]byte) (int, error) { return 0, errEntropy }

func TestSource_ReaderError(t *testing.T) {
	s := NewSource(failingReader{})
	_, err := s.UUID()
	require.Error(t, err)
	assert.ErrorIs(t, err, errEntropy)
}

func TestSource_ShortRead(t *testing.T) {
	s := NewSource(bytes.NewReader([]byte{1, 2, 3}))
	_, err := s.UUID()
	assert.Error(t, err)
}
