package verify_payment

import (
	"context"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// TransactionRepository интерфейс хранилища транзакций checkout
type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.BookingTransaction) error
	GetActive(ctx context.Context, userID string) (*domain.BookingTransaction, error)
	ReleaseCheckoutLock(ctx context.Context, userID string) error
	ClaimProof(ctx context.Context, paymentID string) (bool, error)
	ReleaseProof(ctx context.Context, paymentID string) error
}

// CartRepository интерфейс хранилища корзин
type CartRepository interface {
	Delete(ctx context.Context, userID string) error
}

// AvailabilityCache интерфейс кеша сетки доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context) error
}

// BookingAPIClient интерфейс клиента внешнего API бронирования
type BookingAPIClient interface {
	VerifyPayment(ctx context.Context, token string, req bookingapi.VerifyPaymentRequest) ([]bookingapi.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
