package toggle_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	cartService "github.com/m04kA/SMC-CourtGateway/internal/service/cart"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotInPast         = "этот слот уже начался или прошел"
	msgSlotBooked         = "этот слот уже забронирован"
	msgOutsideHours       = "корт не работает в это время"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/toggle - Invalid request body: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /cart/toggle - Failed to parse date: user_id=%s, date=%q, error=%v", userID, req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Toggle(r.Context(), userID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrSlotInPast):
			h.logger.Warn("POST /cart/toggle - Slot in past: user_id=%s, court=%s, hour=%d", userID, req.CourtID, req.Hour)
			handlers.RespondError(w, http.StatusConflict, msgSlotInPast)

		case errors.Is(err, cartService.ErrSlotBooked):
			h.logger.Warn("POST /cart/toggle - Slot booked: user_id=%s, court=%s, hour=%d", userID, req.CourtID, req.Hour)
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)

		case errors.Is(err, cartService.ErrOutsideOperatingHours):
			h.logger.Warn("POST /cart/toggle - Outside operating hours: user_id=%s, hour=%d", userID, req.Hour)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, cartService.ErrInvalidInput):
			h.logger.Warn("POST /cart/toggle - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /cart/toggle - Failed to toggle slot: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
