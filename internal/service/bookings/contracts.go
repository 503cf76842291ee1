package bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента внешнего API бронирования
type BookingAPIClient interface {
	GetMyBookings(ctx context.Context, token string) ([]bookingapi.Booking, error)
	CancelBooking(ctx context.Context, token string, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
