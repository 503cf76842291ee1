package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	checkoutUC "github.com/m04kA/SMC-CourtGateway/internal/usecase/checkout"
)

const (
	msgEmptyCart          = "корзина пуста"
	msgDuplicateSlots     = "корзина содержит повторяющиеся слоты"
	msgCheckoutInProgress = "оформление уже идет, завершите или отмените его"
	msgSlotConflict       = "один из выбранных слотов уже занят, обновите сетку"
	msgAmountMismatch     = "сумма заказа не совпадает с корзиной, попробуйте еще раз"
	msgUnauthorized       = "сессия истекла, войдите заново"
	msgUpstreamFailure    = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	token := middleware.TokenFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), &checkoutUC.Request{
		UserID: userID,
		Token:  token,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrEmptyCart):
			h.logger.Warn("POST /checkout - Empty cart: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkoutUC.ErrDuplicateSlots):
			h.logger.Warn("POST /checkout - Duplicate slots: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgDuplicateSlots)

		case errors.Is(err, checkoutUC.ErrCheckoutInProgress):
			h.logger.Warn("POST /checkout - Already in progress: user_id=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgCheckoutInProgress)

		case errors.Is(err, checkoutUC.ErrSlotConflict):
			h.logger.Warn("POST /checkout - Slot conflict: user_id=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, checkoutUC.ErrAmountMismatch):
			h.logger.Error("POST /checkout - Amount mismatch: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgAmountMismatch)

		case errors.Is(err, checkoutUC.ErrUnauthorized):
			h.logger.Warn("POST /checkout - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, checkoutUC.ErrUpstreamUnavailable):
			h.logger.Error("POST /checkout - Upstream unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailure)

		default:
			h.logger.Error("POST /checkout - Failed to initiate checkout: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Checkout initiated: user_id=%s, tx=%s, slots=%d",
		userID, result.TransactionID, result.SlotCount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
