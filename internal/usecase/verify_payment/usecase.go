package verify_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/infra/storage/transaction"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// UseCase use case верификации платежа.
// Каждое подтверждение отправляется на верификацию не более одного раза:
// повторная отправка того же paymentID отклоняется до похода в API.
type UseCase struct {
	txRepo   TransactionRepository
	cartRepo CartRepository
	cache    AvailabilityCache
	client   BookingAPIClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(txRepo TransactionRepository, cartRepo CartRepository, cache AvailabilityCache, client BookingAPIClient, logger Logger) *UseCase {
	return &UseCase{
		txRepo:   txRepo,
		cartRepo: cartRepo,
		cache:    cache,
		client:   client,
		logger:   logger,
	}
}

// Execute выполняет use case верификации платежа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("VerifyPayment: validation failed: user=%s: %v", req.UserID, err)
		return nil, err
	}

	// 1. Находим активную транзакцию и сверяем ордер
	tx, err := uc.txRepo.GetActive(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			uc.logger.Warn("VerifyPayment: no active transaction: user=%s", req.UserID)
			return nil, ErrNoActiveTransaction
		}
		uc.logger.Error("VerifyPayment: failed to load transaction: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load transaction: %v", ErrInternal, err)
	}

	if tx.OrderID != req.OrderID {
		uc.logger.Warn("VerifyPayment: order mismatch: user=%s, got=%s, want=%s", req.UserID, req.OrderID, tx.OrderID)
		return nil, ErrOrderMismatch
	}

	if tx.State != domain.TxAuthorizing {
		uc.logger.Warn("VerifyPayment: wrong state: user=%s, state=%s", req.UserID, tx.State)
		return nil, fmt.Errorf("%w: state=%s", ErrWrongState, tx.State)
	}

	// 2. Захватываем подтверждение: одно подтверждение - одна верификация
	claimed, err := uc.txRepo.ClaimProof(ctx, req.PaymentID)
	if err != nil {
		uc.logger.Error("VerifyPayment: failed to claim proof: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to claim proof: %v", ErrInternal, err)
	}
	if !claimed {
		uc.logger.Warn("VerifyPayment: proof already used: user=%s, payment=%s", req.UserID, req.PaymentID)
		return nil, ErrProofAlreadyUsed
	}

	if err := uc.transitionAndSave(ctx, tx, domain.TxVerifying); err != nil {
		return nil, err
	}

	// 3. Верифицируем платеж во внешнем API
	bookings, err := uc.client.VerifyPayment(ctx, req.Token, bookingapi.VerifyPaymentRequest{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return nil, uc.handleVerifyError(ctx, tx, req, err)
	}

	// 4. Платеж подтвержден: финализируем транзакцию
	if err := uc.transitionAndSave(ctx, tx, domain.TxConfirmed); err != nil {
		return nil, err
	}

	uc.finalizeConfirmed(ctx, req.UserID)

	uc.logger.Info("VerifyPayment: confirmed: user=%s, tx=%s, order=%s, bookings=%d",
		req.UserID, tx.ID, tx.OrderID, len(bookings))

	return buildResponse(tx, bookings), nil
}

// handleVerifyError разводит отказ верификации и транспортный сбой.
// Отказ терминален, подтверждение остается использованным.
// При транспортном сбое определенного ответа нет: подтверждение освобождается,
// транзакция возвращается в authorizing и верификацию можно повторить.
func (uc *UseCase) handleVerifyError(ctx context.Context, tx *domain.BookingTransaction, req *Request, err error) error {
	if errors.Is(err, bookingapi.ErrVerificationRejected) {
		uc.logger.Warn("VerifyPayment: rejected: user=%s, order=%s: %v", req.UserID, req.OrderID, err)

		tx.FailReason = "payment verification rejected"
		if txErr := uc.transitionAndSave(ctx, tx, domain.TxFailed); txErr != nil {
			return txErr
		}
		uc.releaseLock(ctx, req.UserID)
		return fmt.Errorf("%w: %v", ErrVerificationRejected, err)
	}

	uc.logger.Error("VerifyPayment: transport failure: user=%s, order=%s: %v", req.UserID, req.OrderID, err)

	if releaseErr := uc.txRepo.ReleaseProof(ctx, req.PaymentID); releaseErr != nil {
		uc.logger.Error("VerifyPayment: failed to release proof: payment=%s: %v", req.PaymentID, releaseErr)
	}
	if txErr := uc.transitionAndSave(ctx, tx, domain.TxAuthorizing); txErr != nil {
		return txErr
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}

// finalizeConfirmed очищает корзину и сбрасывает кеш доступности.
// Ошибки здесь не отменяют подтвержденный платеж, только логируются
func (uc *UseCase) finalizeConfirmed(ctx context.Context, userID string) {
	if err := uc.cartRepo.Delete(ctx, userID); err != nil {
		uc.logger.Error("VerifyPayment: failed to clear cart: user=%s: %v", userID, err)
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Error("VerifyPayment: failed to invalidate availability cache: %v", err)
	}
	uc.releaseLock(ctx, userID)
}

func (uc *UseCase) transitionAndSave(ctx context.Context, tx *domain.BookingTransaction, next domain.TransactionState) error {
	if err := tx.Transition(next); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := uc.txRepo.Save(ctx, tx); err != nil {
		uc.logger.Error("VerifyPayment: failed to save transaction: tx=%s: %v", tx.ID, err)
		return fmt.Errorf("%w: failed to save transaction: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) releaseLock(ctx context.Context, userID string) {
	if err := uc.txRepo.ReleaseCheckoutLock(ctx, userID); err != nil {
		uc.logger.Error("VerifyPayment: failed to release lock: user=%s: %v", userID, err)
	}
}

func validateRequest(req *Request) error {
	if req.OrderID == "" {
		return fmt.Errorf("%w: order id is required", ErrInvalidInput)
	}
	if req.PaymentID == "" {
		return fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}
	if req.Signature == "" {
		return fmt.Errorf("%w: signature is required", ErrInvalidInput)
	}
	return nil
}

func buildResponse(tx *domain.BookingTransaction, bookings []bookingapi.Booking) *Response {
	confirmed := make([]ConfirmedBooking, 0, len(bookings))
	for _, b := range bookings {
		confirmed = append(confirmed, ConfirmedBooking{
			ID:        b.ID,
			CourtID:   b.CourtID,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Price:     b.TotalPrice,
			Status:    b.Status,
		})
	}

	return &Response{
		TransactionID: tx.ID,
		State:         string(tx.State),
		Bookings:      confirmed,
	}
}
