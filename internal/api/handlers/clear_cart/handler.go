package clear_cart

import (
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
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

// Handle DELETE /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /cart - Failed to clear cart: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
