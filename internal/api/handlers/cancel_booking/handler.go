package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-CourtGateway/internal/service/bookings"
)

const (
	msgMissingBookingID = "не указан идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgUnauthorized     = "сессия истекла, войдите заново"
	msgUpstreamFailure  = "сервис бронирования временно недоступен"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	token := middleware.TokenFromContext(r.Context())

	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	if err := h.service.CancelBooking(r.Context(), token, bookingID); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Not found: user_id=%s, booking_id=%s", userID, bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrUnauthorized):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, bookingsService.ErrUpstreamUnavailable):
			h.logger.Error("PATCH /bookings/{bookingId}/cancel - Upstream unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailure)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/cancel - Failed to cancel: user_id=%s, booking_id=%s, error=%v",
				userID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/cancel - Booking cancelled: user_id=%s, booking_id=%s", userID, bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
