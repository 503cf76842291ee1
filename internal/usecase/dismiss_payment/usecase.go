package dismiss_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/infra/storage/transaction"
)

// UseCase use case закрытия платежного виджета.
// Закрытие виджета пользователем - не ошибка: корзина остается нетронутой,
// транзакция возвращается в draft и checkout можно начать заново.
type UseCase struct {
	txRepo TransactionRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(txRepo TransactionRepository, logger Logger) *UseCase {
	return &UseCase{
		txRepo: txRepo,
		logger: logger,
	}
}

// Execute выполняет use case закрытия платежного виджета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	tx, err := uc.txRepo.GetActive(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			uc.logger.Warn("DismissPayment: no active transaction: user=%s", req.UserID)
			return nil, ErrNoActiveTransaction
		}
		uc.logger.Error("DismissPayment: failed to load transaction: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load transaction: %v", ErrInternal, err)
	}

	if tx.State != domain.TxAuthorizing {
		uc.logger.Warn("DismissPayment: wrong state: user=%s, state=%s", req.UserID, tx.State)
		return nil, fmt.Errorf("%w: state=%s", ErrWrongState, tx.State)
	}

	if req.FailReason != "" {
		return uc.fail(ctx, tx, req)
	}
	return uc.abandon(ctx, tx, req)
}

// fail фиксирует отказ платежа, о котором сообщил виджет
func (uc *UseCase) fail(ctx context.Context, tx *domain.BookingTransaction, req *Request) (*Response, error) {
	tx.FailReason = req.FailReason
	if err := tx.Transition(domain.TxFailed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := uc.txRepo.Save(ctx, tx); err != nil {
		uc.logger.Error("DismissPayment: failed to save transaction: tx=%s: %v", tx.ID, err)
		return nil, fmt.Errorf("%w: failed to save transaction: %v", ErrInternal, err)
	}

	uc.releaseLock(ctx, req.UserID)

	uc.logger.Info("DismissPayment: payment failed: user=%s, tx=%s, reason=%s", req.UserID, tx.ID, req.FailReason)
	return &Response{State: string(domain.TxFailed)}, nil
}

// abandon откатывает транзакцию: пользователь закрыл виджет, не оплатив
func (uc *UseCase) abandon(ctx context.Context, tx *domain.BookingTransaction, req *Request) (*Response, error) {
	if err := tx.Transition(domain.TxDraft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := uc.txRepo.Delete(ctx, req.UserID); err != nil {
		uc.logger.Error("DismissPayment: failed to delete transaction: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to delete transaction: %v", ErrInternal, err)
	}

	uc.releaseLock(ctx, req.UserID)

	uc.logger.Info("DismissPayment: abandoned: user=%s, tx=%s", req.UserID, tx.ID)
	return &Response{State: string(domain.TxDraft)}, nil
}

func (uc *UseCase) releaseLock(ctx context.Context, userID string) {
	if err := uc.txRepo.ReleaseCheckoutLock(ctx, userID); err != nil {
		uc.logger.Error("DismissPayment: failed to release lock: user=%s: %v", userID, err)
	}
}
