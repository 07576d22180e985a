package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/storage/storagetest"
)

func newBooking(date, garageID string, slot int, phone string) *domain.Booking {
	return &domain.Booking{
		Date:          date,
		GarageID:      garageID,
		TimeSlotID:    slot,
		CustomerPhone: phone,
	}
}

func TestRepository_CreateIfSlotFree(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))
	fixed := time.Date(2024, 4, 20, 8, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	notes := "oil change"
	b := newBooking("2024-05-01", "G1", 2, "+628111")
	b.Notes = &notes

	created, err := repo.CreateIfSlotFree(ctx, b)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, fixed, created.CreatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.Date)
	assert.Equal(t, "G1", got.GarageID)
	assert.Equal(t, 2, got.TimeSlotID)
	assert.Equal(t, "+628111", got.CustomerPhone)
	assert.Nil(t, got.PackageID)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "oil change", *got.Notes)
	assert.True(t, fixed.Equal(got.CreatedAt))
}

func TestRepository_CreateIfSlotFree_SlotTaken(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))
	ctx := context.Background()

	_, err := repo.CreateIfSlotFree(ctx, newBooking("2024-05-01", "G1", 2, "+628111"))
	require.NoError(t, err)

	_, err = repo.CreateIfSlotFree(ctx, newBooking("2024-05-01", "G1", 2, "+628222"))
	require.ErrorIs(t, err, ErrSlotTaken)

	// Same slot on another garage or another day is independent.
	_, err = repo.CreateIfSlotFree(ctx, newBooking("2024-05-01", "G2", 2, "+628222"))
	require.NoError(t, err)
	_, err = repo.CreateIfSlotFree(ctx, newBooking("2024-05-02", "G1", 2, "+628222"))
	require.NoError(t, err)
}

func TestRepository_CreateIfSlotFree_Concurrent(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))
	ctx := context.Background()

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		taken     int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateIfSlotFree(ctx, newBooking("2024-05-01", "G1", 0, "+628111"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrSlotTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, taken)
}

func TestRepository_ListBookedSlotIDs(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))
	ctx := context.Background()

	ids, err := repo.ListBookedSlotIDs(ctx, "2024-05-01", "G1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, b := range []*domain.Booking{
		newBooking("2024-05-01", "G1", 4, "+628111"),
		newBooking("2024-05-01", "G1", 1, "+628111"),
		newBooking("2024-05-01", "G2", 3, "+628111"),
		newBooking("2024-05-02", "G1", 0, "+628111"),
	} {
		_, err := repo.CreateIfSlotFree(ctx, b)
		require.NoError(t, err)
	}

	ids, err = repo.ListBookedSlotIDs(ctx, "2024-05-01", "G1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, ids)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))

	_, err := repo.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ListByCustomerAndGarage(t *testing.T) {
	repo := NewRepository(storagetest.NewDB(t))
	ctx := context.Background()

	for _, b := range []*domain.Booking{
		newBooking("2024-05-01", "G1", 3, "+628111"),
		newBooking("2024-05-03", "G2", 1, "+628111"),
		newBooking("2024-05-01", "G1", 0, "+628222"),
	} {
		_, err := repo.CreateIfSlotFree(ctx, b)
		require.NoError(t, err)
	}

	mine, err := repo.ListByCustomer(ctx, "+628111")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2024-05-03", mine[0].Date)
	assert.Equal(t, "2024-05-01", mine[1].Date)

	sheet, err := repo.ListByGarageAndDate(ctx, "G1", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, sheet, 2)
	assert.Equal(t, 0, sheet[0].TimeSlotID)
	assert.Equal(t, 3, sheet[1].TimeSlotID)

	none, err := repo.ListByCustomer(ctx, "+620000")
	require.NoError(t, err)
	assert.Empty(t, none)
}
