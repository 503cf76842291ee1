package dismiss_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/infra/storage/transaction"
)

type fakeTxRepo struct {
	tx    *domain.BookingTransaction
	locks map[string]bool
}

func newFakeTxRepo(tx *domain.BookingTransaction) *fakeTxRepo {
	locks := make(map[string]bool)
	if tx != nil {
		locks[tx.UserID] = true
	}
	return &fakeTxRepo{tx: tx, locks: locks}
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

func (r *fakeTxRepo) Delete(_ context.Context, _ string) error {
	r.tx = nil
	return nil
}

func (r *fakeTxRepo) ReleaseCheckoutLock(_ context.Context, userID string) error {
	delete(r.locks, userID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func authorizingTx() *domain.BookingTransaction {
	now := time.Now()
	return &domain.BookingTransaction{
		ID:        "tx-1",
		UserID:    "user-1",
		OrderID:   "order-1",
		State:     domain.TxAuthorizing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestExecute_Abandonment(t *testing.T) {
	txRepo := newFakeTxRepo(authorizingTx())
	uc := NewUseCase(txRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})
	require.NoError(t, err)

	// Транзакция удалена, блокировка снята, можно начинать checkout заново
	assert.Equal(t, string(domain.TxDraft), resp.State)
	assert.Nil(t, txRepo.tx)
	assert.False(t, txRepo.locks["user-1"])
}

func TestExecute_WidgetReportedFailure(t *testing.T) {
	txRepo := newFakeTxRepo(authorizingTx())
	uc := NewUseCase(txRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "user-1", FailReason: "card declined"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.TxFailed), resp.State)
	require.NotNil(t, txRepo.tx)
	assert.Equal(t, domain.TxFailed, txRepo.tx.State)
	assert.Equal(t, "card declined", txRepo.tx.FailReason)
	assert.False(t, txRepo.locks["user-1"])
}

func TestExecute_NoActiveTransaction(t *testing.T) {
	uc := NewUseCase(newFakeTxRepo(nil), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoActiveTransaction)
}

func TestExecute_WrongState(t *testing.T) {
	tx := authorizingTx()
	tx.State = domain.TxVerifying
	uc := NewUseCase(newFakeTxRepo(tx), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: "user-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongState)
}
