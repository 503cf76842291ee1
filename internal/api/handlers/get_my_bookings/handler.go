package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-CourtGateway/internal/service/bookings"
)

const (
	msgUnauthorized    = "сессия истекла, войдите заново"
	msgUpstreamFailure = "сервис бронирования временно недоступен"
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

// Handle GET /api/v1/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	token := middleware.TokenFromContext(r.Context())

	result, err := h.service.GetMyBookings(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrUnauthorized):
			h.logger.Warn("GET /bookings/my - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, bookingsService.ErrUpstreamUnavailable):
			h.logger.Error("GET /bookings/my - Upstream unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailure)

		default:
			h.logger.Error("GET /bookings/my - Failed to load bookings: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
