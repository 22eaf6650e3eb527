package favorites

import (
	"errors"
	"sync"
	"testing"

	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func TestLoadAbsentKeyIsEmpty(t *testing.T) {
	s := NewStore(newMemStore())
	set, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.Equal(t, 0, s.Len())
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	s := NewStore(newMemStore())
	_, err := s.Load()
	require.NoError(t, err)

	added, err := s.Toggle(7)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.Contains(7))

	added, err = s.Toggle(7)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.Contains(7))
}

func TestToggleSurvivesReload(t *testing.T) {
	backend, err := storage.NewFileStorageAt(t.TempDir())
	require.NoError(t, err)

	s := NewStore(backend)
	_, err = s.Load()
	require.NoError(t, err)
	_, err = s.Toggle(5)
	require.NoError(t, err)
	_, err = s.Toggle(1)
	require.NoError(t, err)

	raw, err := backend.Get(StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, "[1,5]", string(raw))

	reloaded := NewStore(backend)
	set, err := reloaded.Load()
	require.NoError(t, err)
	assert.True(t, set.Contains(5))
	assert.Equal(t, []int{1, 5}, reloaded.IDs())
}

func TestMalformedDataFailsOpen(t *testing.T) {
	backend := newMemStore()
	backend.data[StorageKey] = []byte(`{"oops":`)

	s := NewStore(backend)
	set, err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, dexerrors.ErrPersistence)
	assert.Empty(t, set)

	added, err := s.Toggle(3)
	require.NoError(t, err)
	assert.True(t, added)
	assert.JSONEq(t, "[3]", string(backend.data[StorageKey]))
}

func TestToggleWriteFailureRollsBack(t *testing.T) {
	backend := newMemStore()
	s := NewStore(backend)
	_, err := s.Load()
	require.NoError(t, err)

	backend.failSet = errors.New("disk full")
	added, err := s.Toggle(9)
	require.Error(t, err)
	assert.ErrorIs(t, err, dexerrors.ErrPersistence)
	assert.False(t, added)
	assert.False(t, s.Contains(9))
}

func TestClear(t *testing.T) {
	backend := newMemStore()
	s := NewStore(backend)
	for _, id := range []int{3, 1, 2} {
		_, err := s.Toggle(id)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 3}, s.IDs())

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.JSONEq(t, "[]", string(backend.data[StorageKey]))
}

func TestConcurrentToggles(t *testing.T) {
	s := NewStore(newMemStore())
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := s.Toggle(id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, s.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(newMemStore())
	_, err := s.Toggle(1)
	require.NoError(t, err)

	snap := s.Snapshot()
	snap[2] = struct{}{}
	assert.False(t, s.Contains(2))
}
