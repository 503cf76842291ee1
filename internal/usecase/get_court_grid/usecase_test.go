package get_court_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

type fakeClient struct {
	courts []bookingapi.CourtWithAvailability
	err    error
	calls  int
}

func (c *fakeClient) GetCourtsWithAvailability(_ context.Context, _ string) ([]bookingapi.CourtWithAvailability, error) {
	c.calls++
	return c.courts, c.err
}

type fakeCache struct {
	payload []byte
}

func (c *fakeCache) Get(_ context.Context) ([]byte, error) {
	return c.payload, nil
}

func (c *fakeCache) Set(_ context.Context, payload []byte) error {
	c.payload = payload
	return nil
}

type fakeCartRepo struct {
	cart *domain.Cart
}

func (r *fakeCartRepo) Get(_ context.Context, _ string) (*domain.Cart, error) {
	if r.cart == nil {
		return &domain.Cart{Items: []domain.SelectedSlot{}}, nil
	}
	return r.cart, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testNow() time.Time {
	return time.Date(2025, 12, 3, 10, 30, 0, 0, time.Local)
}

func apiSlot(hour int, price float64, booked bool) bookingapi.TimeSlot {
	return bookingapi.TimeSlot{
		StartTime: types.NewTimeStringFromHour(hour).String(),
		EndTime:   types.NewTimeStringFromHour(hour + 1).String(),
		Hour:      bookingapi.SlotHour(hour),
		Price:     price,
		IsBooked:  booked,
	}
}

func testCourt() bookingapi.CourtWithAvailability {
	return bookingapi.CourtWithAvailability{
		Court: bookingapi.Court{ID: "court-1", Name: "Корт 1", Type: "SINGLE", BaseRate: 500, IsActive: true},
		Availability: []bookingapi.DayAvailability{
			// Даты заданы не по порядку и в разных форматах
			{Date: "2025-12-04T00:00:00.000Z", Slots: []bookingapi.TimeSlot{apiSlot(12, 600, false)}},
			{Date: "2025-12-03", Slots: []bookingapi.TimeSlot{
				apiSlot(9, 500, false),
				apiSlot(10, 500, false),
				apiSlot(11, 500, true),
				apiSlot(12, 500, false),
			}},
		},
	}
}

func newTestUseCase(client *fakeClient, cache *fakeCache, cartRepo *fakeCartRepo) *UseCase {
	uc := NewUseCase(client, cache, cartRepo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow()}
	return uc
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func rowForHour(t *testing.T, grid CourtGrid, hour int) GridRow {
	t.Helper()
	for _, row := range grid.Rows {
		if row.Hour == hour {
			return row
		}
	}
	t.Fatalf("hour %d not found in grid", hour)
	return GridRow{}
}

func TestExecute_CellClassification(t *testing.T) {
	client := &fakeClient{courts: []bookingapi.CourtWithAvailability{testCourt()}}
	uc := newTestUseCase(client, &fakeCache{}, &fakeCartRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)

	grid := resp.Courts[0]

	// Колонки отсортированы хронологически независимо от порядка в ответе API
	assert.Equal(t, []string{"2025-12-03", "2025-12-04"}, grid.Days)
	assert.Len(t, grid.Rows, domain.SlotsPerDay)

	// Сегодня 2025-12-03 10:30: час 9 и час 10 уже прошли
	assert.Equal(t, domain.CellPast, rowForHour(t, grid, 9).Cells[0].State)
	assert.Equal(t, domain.CellPast, rowForHour(t, grid, 10).Cells[0].State)
	// Час 11 впереди, но занят
	assert.Equal(t, domain.CellBooked, rowForHour(t, grid, 11).Cells[0].State)
	// Час 12 свободен
	assert.Equal(t, domain.CellAvailable, rowForHour(t, grid, 12).Cells[0].State)
	// Слота на час 13 в ответе API нет
	assert.Equal(t, domain.CellNonexistent, rowForHour(t, grid, 13).Cells[0].State)

	// Завтрашний день: слот есть только на час 12
	assert.Equal(t, domain.CellAvailable, rowForHour(t, grid, 12).Cells[1].State)
	assert.Equal(t, domain.CellNonexistent, rowForHour(t, grid, 9).Cells[1].State)
}

func TestExecute_SelectedOverlay(t *testing.T) {
	day, err := domain.ResolveDayBoundary("2025-12-04T00:00:00.000Z")
	require.NoError(t, err)

	cart := &domain.Cart{Items: []domain.SelectedSlot{
		{
			CourtID: "court-1",
			Date:    day,
			Slot:    domain.TimeSlot{Hour: 12, StartTime: "12:00", EndTime: "13:00", Price: 600},
			Price:   600,
		},
	}}

	client := &fakeClient{courts: []bookingapi.CourtWithAvailability{testCourt()}}
	uc := newTestUseCase(client, &fakeCache{}, &fakeCartRepo{cart: cart})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)

	row := rowForHour(t, resp.Courts[0], 12)
	assert.False(t, row.Cells[0].Selected)
	assert.True(t, row.Cells[1].Selected)
}

func TestExecute_CacheReadThrough(t *testing.T) {
	client := &fakeClient{courts: []bookingapi.CourtWithAvailability{testCourt()}}
	cache := &fakeCache{}
	uc := newTestUseCase(client, cache, &fakeCartRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)
	assert.False(t, resp.FromCache)
	assert.Equal(t, 1, client.calls)
	assert.NotEmpty(t, cache.payload)

	// Второй запрос обслуживается из кеша без похода в API
	resp, err = uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)
	assert.True(t, resp.FromCache)
	assert.Equal(t, 1, client.calls)
}

func TestExecute_SkipsInactiveCourts(t *testing.T) {
	inactive := testCourt()
	inactive.ID = "court-2"
	inactive.IsActive = false

	client := &fakeClient{courts: []bookingapi.CourtWithAvailability{testCourt(), inactive}}
	uc := newTestUseCase(client, &fakeCache{}, &fakeCartRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, "court-1", resp.Courts[0].CourtID)
}

func TestExecute_Unauthorized(t *testing.T) {
	client := &fakeClient{err: bookingapi.ErrUnauthorized}
	uc := newTestUseCase(client, &fakeCache{}, &fakeCartRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "bad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
