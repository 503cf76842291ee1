package get_court_grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента внешнего API бронирования
type BookingAPIClient interface {
	GetCourtsWithAvailability(ctx context.Context, token string) ([]bookingapi.CourtWithAvailability, error)
}

// AvailabilityCache интерфейс кеша сетки доступности
type AvailabilityCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
}

// CartRepository интерфейс хранилища корзин
type CartRepository interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
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
