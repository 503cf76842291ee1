package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CourtGateway/internal/service/bookings/models"
)

// Service сервис просмотра и отмены бронирований пользователя
type Service struct {
	client BookingAPIClient
	logger Logger
}

// NewService создаёт новый сервис бронирований
func NewService(client BookingAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetMyBookings возвращает бронирования текущего пользователя
func (s *Service) GetMyBookings(ctx context.Context, token string) (*models.MyBookingsResponse, error) {
	upstream, err := s.client.GetMyBookings(ctx, token)
	if err != nil {
		s.logger.Error("[BookingsService.GetMyBookings] Upstream call failed: error=%v", err)
		return nil, s.mapUpstreamError(err)
	}

	items := make([]models.BookingItem, 0, len(upstream))
	for _, b := range upstream {
		items = append(items, models.BookingItem{
			ID:            b.ID,
			CourtID:       b.CourtID,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			TotalPrice:    b.TotalPrice,
			DurationHours: b.DurationHours,
			Status:        b.Status,
			CreatedAt:     b.CreatedAt,
		})
	}

	return &models.MyBookingsResponse{
		Bookings: items,
		Count:    len(items),
	}, nil
}

// CancelBooking отменяет бронирование пользователя во внешнем API
func (s *Service) CancelBooking(ctx context.Context, token string, bookingID string) error {
	if err := s.client.CancelBooking(ctx, token, bookingID); err != nil {
		s.logger.Error("[BookingsService.CancelBooking] Upstream call failed: bookingID=%s, error=%v", bookingID, err)
		return s.mapUpstreamError(err)
	}

	s.logger.Info("[BookingsService.CancelBooking] Booking cancelled: bookingID=%s", bookingID)
	return nil
}

func (s *Service) mapUpstreamError(err error) error {
	switch {
	case errors.Is(err, bookingapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, bookingapi.ErrBookingNotFound):
		return fmt.Errorf("%w: %v", ErrBookingNotFound, err)
	case errors.Is(err, bookingapi.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
