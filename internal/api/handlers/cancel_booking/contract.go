package cancel_booking

import "context"

type BookingsService interface {
	CancelBooking(ctx context.Context, token string, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
