package dismiss_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	dismissPayment "github.com/m04kA/SMC-CourtGateway/internal/usecase/dismiss_payment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNoActiveTransaction = "нет незавершенного оформления"
	msgWrongState          = "оформление не находится в фазе оплаты"
)

// DismissPaymentRequest HTTP request model.
// failReason присутствует только когда виджет сообщил об отказе платежа
type DismissPaymentRequest struct {
	FailReason string `json:"failReason,omitempty"`
}

type Handler struct {
	useCase DismissPaymentUseCase
	logger  Logger
}

func NewHandler(useCase DismissPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/dismiss
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	// Тело опционально: закрытие виджета без причины это обычный abandonment
	var req DismissPaymentRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /checkout/dismiss - Invalid request body: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &dismissPayment.Request{
		UserID:     userID,
		FailReason: req.FailReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, dismissPayment.ErrNoActiveTransaction):
			h.logger.Warn("POST /checkout/dismiss - No active transaction: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNoActiveTransaction)

		case errors.Is(err, dismissPayment.ErrWrongState):
			h.logger.Warn("POST /checkout/dismiss - Wrong state: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusConflict, msgWrongState)

		default:
			h.logger.Error("POST /checkout/dismiss - Failed to dismiss payment: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/dismiss - Payment dismissed: user_id=%s, state=%s", userID, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
