package checkout

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

type fakeCartRepo struct {
	cart *domain.Cart
}

func (r *fakeCartRepo) Get(_ context.Context, _ string) (*domain.Cart, error) {
	if r.cart == nil {
		return &domain.Cart{Items: []domain.SelectedSlot{}}, nil
	}
	return r.cart, nil
}

type fakeTxRepo struct {
	saved *domain.BookingTransaction
	locks map[string]bool
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{locks: make(map[string]bool)}
}

func (r *fakeTxRepo) Save(_ context.Context, tx *domain.BookingTransaction) error {
	r.saved = tx
	return nil
}

func (r *fakeTxRepo) AcquireCheckoutLock(_ context.Context, userID string) (bool, error) {
	if r.locks[userID] {
		return false, nil
	}
	r.locks[userID] = true
	return true, nil
}

func (r *fakeTxRepo) ReleaseCheckoutLock(_ context.Context, userID string) error {
	delete(r.locks, userID)
	return nil
}

type fakeClient struct {
	resp  *bookingapi.BulkInitiateResponse
	err   error
	calls int
	lines []bookingapi.CreateBookingRequest
}

func (c *fakeClient) BulkInitiate(_ context.Context, _ string, lines []bookingapi.CreateBookingRequest) (*bookingapi.BulkInitiateResponse, error) {
	c.calls++
	c.lines = lines
	if c.err != nil {
		return nil, c.err
	}
	return c.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func cartItem(courtID string, day domain.CalendarDate, hour int, price float64) domain.SelectedSlot {
	return domain.SelectedSlot{
		CourtID: courtID,
		Date:    day,
		Slot: domain.TimeSlot{
			Hour:      hour,
			StartTime: types.NewTimeStringFromHour(hour),
			EndTime:   types.NewTimeStringFromHour(hour + 1),
			Price:     price,
		},
		Price: price,
	}
}

func threeSlotCart() *domain.Cart {
	day := domain.NewCalendarDate(time.Date(2025, 12, 10, 0, 0, 0, 0, time.Local))
	return &domain.Cart{Items: []domain.SelectedSlot{
		cartItem("court-1", day, 12, 500),
		cartItem("court-1", day, 13, 600),
		cartItem("court-2", day, 12, 700),
	}}
}

func orderResponse(amount int64) *bookingapi.BulkInitiateResponse {
	return &bookingapi.BulkInitiateResponse{
		Order:     bookingapi.PaymentOrder{ID: "order-1", Amount: amount, Currency: domain.CurrencyINR},
		PaymentID: "payment-1",
	}
}

func TestExecute_SingleBatchCall(t *testing.T) {
	client := &fakeClient{resp: orderResponse(180000)}
	txRepo := newFakeTxRepo()
	uc := NewUseCase(&fakeCartRepo{cart: threeSlotCart()}, txRepo, client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)

	// Три слота корзины уходят одним batch-запросом
	assert.Equal(t, 1, client.calls)
	require.Len(t, client.lines, 3)
	assert.Equal(t, 3, resp.SlotCount)
	assert.Equal(t, "order-1", resp.Order.OrderID)
	assert.Equal(t, int64(180000), resp.Order.Amount)

	// Строки batch-запроса покрывают часовые интервалы слотов
	assert.Equal(t, "court-1", client.lines[0].CourtID)
	assert.Contains(t, client.lines[0].StartTime, "2025-12-10T12:00:00")
	assert.Contains(t, client.lines[0].EndTime, "2025-12-10T13:00:00")

	// Транзакция сохранена в состоянии authorizing
	require.NotNil(t, txRepo.saved)
	assert.Equal(t, domain.TxAuthorizing, txRepo.saved.State)
	assert.Equal(t, int64(180000), txRepo.saved.AmountMinor)
	assert.Len(t, txRepo.saved.Lines, 3)
}

func TestExecute_EmptyCart(t *testing.T) {
	uc := NewUseCase(&fakeCartRepo{}, newFakeTxRepo(), &fakeClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestExecute_DoubleSubmissionGuard(t *testing.T) {
	client := &fakeClient{resp: orderResponse(180000)}
	txRepo := newFakeTxRepo()
	uc := NewUseCase(&fakeCartRepo{cart: threeSlotCart()}, txRepo, client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.NoError(t, err)

	// Повторный checkout при живой блокировке отклоняется без похода в API
	_, err = uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)
	assert.Equal(t, 1, client.calls)
}

func TestExecute_AmountMismatchReleasesLock(t *testing.T) {
	client := &fakeClient{resp: orderResponse(999)}
	txRepo := newFakeTxRepo()
	uc := NewUseCase(&fakeCartRepo{cart: threeSlotCart()}, txRepo, client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.False(t, txRepo.locks["user-1"])
	assert.Nil(t, txRepo.saved)
}

func TestExecute_SlotConflictReleasesLock(t *testing.T) {
	client := &fakeClient{err: bookingapi.ErrSlotConflict}
	txRepo := newFakeTxRepo()
	uc := NewUseCase(&fakeCartRepo{cart: threeSlotCart()}, txRepo, client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Блокировка снята, повторная попытка снова доходит до API
	_, err = uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 2, client.calls)
}

func TestExecute_DuplicateSlots(t *testing.T) {
	day := domain.NewCalendarDate(time.Date(2025, 12, 10, 0, 0, 0, 0, time.Local))
	cart := &domain.Cart{Items: []domain.SelectedSlot{
		cartItem("court-1", day, 12, 500),
		cartItem("court-1", day, 12, 500),
	}}

	uc := NewUseCase(&fakeCartRepo{cart: cart}, newFakeTxRepo(), &fakeClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1", Token: "token"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSlots)
}
