package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoreLifecycle проверяет создание, поиск и удаление сессий.
func TestStoreLifecycle(t *testing.T) {
	store := NewStore(Dependencies{}, Options{EventType: "Wedding", GuestCount: 150}, 0)

	session, err := store.Create("", 0)
	require.NoError(t, err)

	snapshot := session.Snapshot()
	assert.Equal(t, "Wedding", snapshot.EventType)
	assert.Equal(t, 150, snapshot.GuestCount)

	custom, err := store.Create("Graduation", 80)
	require.NoError(t, err)
	assert.Equal(t, "Graduation", custom.Snapshot().EventType)
	assert.Equal(t, 2, store.Len())

	found, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, found)

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)

	assert.True(t, store.Delete(session.ID))
	assert.False(t, store.Delete(session.ID))
	assert.Equal(t, 1, store.Len())
}

// TestStoreLimit проверяет ограничение числа сессий.
func TestStoreLimit(t *testing.T) {
	store := NewStore(Dependencies{}, Options{}, 1)

	_, err := store.Create("Wedding", 10)
	require.NoError(t, err)

	_, err = store.Create("Birthday", 10)
	require.ErrorIs(t, err, ErrStoreFull)
}
