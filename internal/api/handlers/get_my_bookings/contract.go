package get_my_bookings

import (
	"context"

	bookingsModels "github.com/m04kA/SMC-CourtGateway/internal/service/bookings/models"
)

type BookingsService interface {
	GetMyBookings(ctx context.Context, token string) (*bookingsModels.MyBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
