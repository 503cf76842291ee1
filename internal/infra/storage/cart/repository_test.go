package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRepository(client, time.Hour)
}

func testItem(courtID string, hour int, price float64) domain.SelectedSlot {
	start := types.NewTimeStringFromHour(hour)
	end := types.NewTimeStringFromHour(hour + 1)
	return domain.SelectedSlot{
		CourtID:   courtID,
		CourtName: "Корт 1",
		Date:      domain.CalendarDate{Year: 2025, Month: time.December, Day: 3},
		Slot:      domain.TimeSlot{Hour: hour, StartTime: start, EndTime: end, Price: price},
		Price:     price,
	}
}

func TestRepository_GetEmptyCart(t *testing.T) {
	repo := newTestRepository(t)

	cart, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Toggle(testItem("court-1", 10, 500))
	cart.Toggle(testItem("court-2", 11, 600))

	require.NoError(t, repo.Save(ctx, "user-1", cart))

	loaded, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, cart.Keys(), loaded.Keys())
	assert.Equal(t, float64(1100), loaded.Total())
}

func TestRepository_CartsAreIsolatedPerUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Toggle(testItem("court-1", 10, 500))
	require.NoError(t, repo.Save(ctx, "user-1", cart))

	other, err := repo.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cart := &domain.Cart{}
	cart.Toggle(testItem("court-1", 10, 500))
	require.NoError(t, repo.Save(ctx, "user-1", cart))

	require.NoError(t, repo.Delete(ctx, "user-1"))

	loaded, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
