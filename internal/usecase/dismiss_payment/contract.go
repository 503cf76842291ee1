package dismiss_payment

import (
	"context"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
)

// TransactionRepository интерфейс хранилища транзакций checkout
type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.BookingTransaction) error
	GetActive(ctx context.Context, userID string) (*domain.BookingTransaction, error)
	Delete(ctx context.Context, userID string) error
	ReleaseCheckoutLock(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
