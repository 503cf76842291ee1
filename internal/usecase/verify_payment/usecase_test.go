package verify_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/infra/storage/transaction"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

type fakeTxRepo struct {
	tx     *domain.BookingTransaction
	locks  map[string]bool
	proofs map[string]bool
}

func newFakeTxRepo(tx *domain.BookingTransaction) *fakeTxRepo {
	locks := make(map[string]bool)
	if tx != nil {
		locks[tx.UserID] = true
	}
	return &fakeTxRepo{tx: tx, locks: locks, proofs: make(map[string]bool)}
}

func (r *fakeTxRepo) Save(_ context.Context, tx *domain.BookingTransaction) error {
	r.tx = tx
	return nil
}

func (r *fakeTxRepo) GetActive(_ context.Context, _ string) (*domain.BookingTransaction, error) {
	if r.tx == nil {
		return nil, transaction.ErrTransactionNotFound
	}
	return r.tx, nil
}

func (r *fakeTxRepo) ReleaseCheckoutLock(_ context.Context, userID string) error {
	delete(r.locks, userID)
	return nil
}

func (r *fakeTxRepo) ClaimProof(_ context.Context, paymentID string) (bool, error) {
	if r.proofs[paymentID] {
		return false, nil
	}
	r.proofs[paymentID] = true
	return true, nil
}

func (r *fakeTxRepo) ReleaseProof(_ context.Context, paymentID string) error {
	delete(r.proofs, paymentID)
	return nil
}

type fakeCartRepo struct {
	deleted bool
}

func (r *fakeCartRepo) Delete(_ context.Context, _ string) error {
	r.deleted = true
	return nil
}

type fakeCache struct {
	invalidated bool
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.invalidated = true
	return nil
}

type fakeClient struct {
	bookings []bookingapi.Booking
	err      error
	calls    int
}

func (c *fakeClient) VerifyPayment(_ context.Context, _ string, _ bookingapi.VerifyPaymentRequest) ([]bookingapi.Booking, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func authorizingTx() *domain.BookingTransaction {
	now := time.Now()
	return &domain.BookingTransaction{
		ID:          "tx-1",
		UserID:      "user-1",
		OrderID:     "order-1",
		PaymentID:   "payment-1",
		AmountMinor: 180000,
		Currency:    domain.CurrencyINR,
		Lines:       []domain.SelectedSlot{{CourtID: "court-1"}},
		State:       domain.TxAuthorizing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func verifyRequest() *Request {
	return &Request{
		UserID:    "user-1",
		Token:     "token",
		OrderID:   "order-1",
		PaymentID: "payment-1",
		Signature: "sig",
	}
}

func TestExecute_Confirmed(t *testing.T) {
	txRepo := newFakeTxRepo(authorizingTx())
	cartRepo := &fakeCartRepo{}
	cache := &fakeCache{}
	client := &fakeClient{bookings: []bookingapi.Booking{{ID: "booking-1", Status: "CONFIRMED"}}}

	uc := NewUseCase(txRepo, cartRepo, cache, client, nopLogger{})

	resp, err := uc.Execute(context.Background(), verifyRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.TxConfirmed), resp.State)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)

	// Подтверждение очищает корзину, сбрасывает кеш и снимает блокировку
	assert.True(t, cartRepo.deleted)
	assert.True(t, cache.invalidated)
	assert.False(t, txRepo.locks["user-1"])
}

func TestExecute_ProofUsedAtMostOnce(t *testing.T) {
	txRepo := newFakeTxRepo(authorizingTx())
	client := &fakeClient{err: bookingapi.ErrVerificationRejected}

	uc := NewUseCase(txRepo, &fakeCartRepo{}, &fakeCache{}, client, nopLogger{})

	_, err := uc.Execute(context.Background(), verifyRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerificationRejected)
	assert.Equal(t, domain.TxFailed, txRepo.tx.State)
	assert.Equal(t, 1, client.calls)

	// Отказ терминален: то же подтверждение повторно не уходит в API
	txRepo.tx = authorizingTx()
	_, err = uc.Execute(context.Background(), verifyRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProofAlreadyUsed)
	assert.Equal(t, 1, client.calls)
}

func TestExecute_TransportFailureIsRetryable(t *testing.T) {
	txRepo := newFakeTxRepo(authorizingTx())
	client := &fakeClient{err: bookingapi.ErrUnavailable}

	uc := NewUseCase(txRepo, &fakeCartRepo{}, &fakeCache{}, client, nopLogger{})

	_, err := uc.Execute(context.Background(), verifyRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	// Транзакция вернулась в authorizing, подтверждение освобождено
	assert.Equal(t, domain.TxAuthorizing, txRepo.tx.State)
	assert.False(t, txRepo.proofs["payment-1"])

	// Повторная верификация после восстановления API проходит
	client.err = nil
	client.bookings = []bookingapi.Booking{{ID: "booking-1"}}

	resp, err := uc.Execute(context.Background(), verifyRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.TxConfirmed), resp.State)
	assert.Equal(t, 2, client.calls)
}

func TestExecute_OrderMismatch(t *testing.T) {
	txRepo := newFakeTxRepo(authorizingTx())
	uc := NewUseCase(txRepo, &fakeCartRepo{}, &fakeCache{}, &fakeClient{}, nopLogger{})

	req := verifyRequest()
	req.OrderID = "order-2"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrderMismatch)
}

func TestExecute_NoActiveTransaction(t *testing.T) {
	uc := NewUseCase(newFakeTxRepo(nil), &fakeCartRepo{}, &fakeCache{}, &fakeClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), verifyRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoActiveTransaction)
}

func TestExecute_ValidationFailed(t *testing.T) {
	uc := NewUseCase(newFakeTxRepo(authorizingTx()), &fakeCartRepo{}, &fakeCache{}, &fakeClient{}, nopLogger{})

	req := verifyRequest()
	req.Signature = ""

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
