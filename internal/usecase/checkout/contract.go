package checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// CartRepository интерфейс хранилища корзин
type CartRepository interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
}

// TransactionRepository интерфейс хранилища транзакций checkout
type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.BookingTransaction) error
	AcquireCheckoutLock(ctx context.Context, userID string) (bool, error)
	ReleaseCheckoutLock(ctx context.Context, userID string) error
}

// BookingAPIClient интерфейс клиента внешнего API бронирования
type BookingAPIClient interface {
	BulkInitiate(ctx context.Context, token string, lines []bookingapi.CreateBookingRequest) (*bookingapi.BulkInitiateResponse, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
