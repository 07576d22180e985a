package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	sess := &domain.Session{Token: "tok", Phone: "+628111", Name: "Budi"}
	require.NoError(t, store.Save(ctx, sess, time.Hour))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "+628111", got.Phone)

	// Returned sessions are copies.
	got.Name = "changed"
	again, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Budi", again.Name)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{Token: "tok"}, time.Minute))

	now = now.Add(time.Minute)
	_, err := store.Get(ctx, "tok")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SaveSweepsExpiredSessions(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{Token: "abandoned"}, time.Minute))
	require.NoError(t, store.Save(ctx, &domain.Session{Token: "long"}, time.Hour))

	now = now.Add(2 * sweepInterval)
	require.NoError(t, store.Save(ctx, &domain.Session{Token: "fresh"}, time.Hour))

	store.mu.Lock()
	_, abandoned := store.sessions["abandoned"]
	_, long := store.sessions["long"]
	size := len(store.sessions)
	store.mu.Unlock()

	assert.False(t, abandoned, "expired session must be dropped without a Get")
	assert.True(t, long)
	assert.Equal(t, 2, size)
}

func TestMemoryStore_RejectsNonPositiveTTL(t *testing.T) {
	store := NewMemoryStore()

	err := store.Save(context.Background(), &domain.Session{Token: "tok"}, 0)
	require.ErrorIs(t, err, ErrStore)
}

func TestRecord_RoundTripKeepsSelection(t *testing.T) {
	city := "Jakarta"
	sess := &domain.Session{Token: "tok", Phone: "+628111", City: &city}

	got := toRecord(sess).toDomain()

	require.NotNil(t, got.City)
	assert.Equal(t, "Jakarta", *got.City)
	assert.Nil(t, got.GarageID)
}
