package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intellecta-site/pkg/models"
)

func TestStatusStoreLifecycle(t *testing.T) {
	store := NewStatusStore(20 * time.Millisecond)
	defer store.Close()

	assert.Equal(t, models.StatusIdle, store.Get("s1"))

	require.NoError(t, store.Begin("s1"))
	assert.Equal(t, models.StatusSending, store.Get("s1"))

	require.NoError(t, store.Finish("s1"))
	assert.Equal(t, models.StatusDone, store.Get("s1"))

	require.Eventually(t, func() bool {
		return store.Get("s1") == models.StatusIdle
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, store.Len())
}

func TestStatusStoreRejectsOutOfOrder(t *testing.T) {
	store := NewStatusStore(time.Hour)
	defer store.Close()

	require.ErrorIs(t, store.Finish("s1"), models.ErrInvalidTransition)

	require.NoError(t, store.Begin("s1"))
	require.ErrorIs(t, store.Begin("s1"), models.ErrInvalidTransition)

	require.NoError(t, store.Finish("s1"))
	require.ErrorIs(t, store.Begin("s1"), models.ErrInvalidTransition, "done must return to idle first")
}

func TestStatusStoreSessionsAreIndependent(t *testing.T) {
	store := NewStatusStore(time.Hour)
	defer store.Close()

	require.NoError(t, store.Begin("a"))
	assert.Equal(t, models.StatusIdle, store.Get("b"))
	require.NoError(t, store.Begin("b"))
	assert.Equal(t, 2, store.Len())
}

func TestStatusStoreIgnoresEmptySession(t *testing.T) {
	store := NewStatusStore(time.Hour)
	defer store.Close()

	require.NoError(t, store.Begin(""))
	require.NoError(t, store.Begin(""))
	require.NoError(t, store.Finish(""))
	assert.Equal(t, 0, store.Len())
}

func TestStatusStoreClose(t *testing.T) {
	store := NewStatusStore(time.Hour)
	require.NoError(t, store.Begin("a"))
	require.NoError(t, store.Finish("a"))

	store.Close()
	assert.Equal(t, 0, store.Len())
}
