package remove_cart_item

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
)

const msgInvalidIndex = "некорректный индекс строки корзины"

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

// Handle DELETE /api/v1/cart/items/{index}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.logger.Warn("DELETE /cart/items/{index} - Invalid index: user_id=%s, index=%q", userID, mux.Vars(r)["index"])
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	// Индекс вне диапазона не ошибка: строки могли сдвинуться после другого удаления
	result, err := h.service.Remove(r.Context(), userID, index)
	if err != nil {
		h.logger.Error("DELETE /cart/items/{index} - Failed to remove item: user_id=%s, index=%d, error=%v", userID, index, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
