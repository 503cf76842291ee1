package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	verifyPayment "github.com/m04kA/SMC-CourtGateway/internal/usecase/verify_payment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNoActiveTransaction  = "нет незавершенного оформления"
	msgOrderMismatch        = "платеж не относится к текущему оформлению"
	msgWrongState           = "оформление не ожидает подтверждения платежа"
	msgProofAlreadyUsed     = "это подтверждение платежа уже обработано"
	msgVerificationRejected = "платеж не прошел проверку"
	msgUpstreamFailure      = "сервис бронирования временно недоступен, повторите подтверждение"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	token := middleware.TokenFromContext(r.Context())

	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/verify - Invalid request body: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &verifyPayment.Request{
		UserID:    userID,
		Token:     token,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /checkout/verify - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, verifyPayment.ErrNoActiveTransaction):
			h.logger.Warn("POST /checkout/verify - No active transaction: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNoActiveTransaction)

		case errors.Is(err, verifyPayment.ErrOrderMismatch):
			h.logger.Warn("POST /checkout/verify - Order mismatch: user_id=%s, order=%s", userID, req.OrderID)
			handlers.RespondError(w, http.StatusConflict, msgOrderMismatch)

		case errors.Is(err, verifyPayment.ErrWrongState):
			h.logger.Warn("POST /checkout/verify - Wrong state: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusConflict, msgWrongState)

		case errors.Is(err, verifyPayment.ErrProofAlreadyUsed):
			h.logger.Warn("POST /checkout/verify - Proof already used: user_id=%s, payment=%s", userID, req.PaymentID)
			handlers.RespondError(w, http.StatusConflict, msgProofAlreadyUsed)

		case errors.Is(err, verifyPayment.ErrVerificationRejected):
			h.logger.Warn("POST /checkout/verify - Verification rejected: user_id=%s, order=%s", userID, req.OrderID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVerificationRejected)

		case errors.Is(err, verifyPayment.ErrUpstreamUnavailable):
			h.logger.Error("POST /checkout/verify - Upstream unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailure)

		default:
			h.logger.Error("POST /checkout/verify - Failed to verify payment: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/verify - Payment confirmed: user_id=%s, tx=%s, bookings=%d",
		userID, result.TransactionID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
