package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/storage/storagetest"
)

func TestRepository_UpsertAndGet(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))
	first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return first }
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.User{Phone: "+628111", Name: "Budi"}))

	got, err := repo.GetByPhone(ctx, "+628111")
	require.NoError(t, err)
	assert.Equal(t, "Budi", got.Name)
	assert.Nil(t, got.Email)
	assert.True(t, first.Equal(got.CreatedAt))

	email := "budi@example.com"
	repo.now = func() time.Time { return first.Add(24 * time.Hour) }
	require.NoError(t, repo.Upsert(ctx, &domain.User{Phone: "+628111", Name: "Budi S.", Email: &email}))

	got, err = repo.GetByPhone(ctx, "+628111")
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)
	assert.True(t, first.Equal(got.CreatedAt))
}

func TestRepository_GetByPhone_NotFound(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))

	_, err := repo.GetByPhone(context.Background(), "+620000")
	require.ErrorIs(t, err, ErrUserNotFound)
}
