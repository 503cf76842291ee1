package get_cart

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

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /cart - Failed to load cart: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
