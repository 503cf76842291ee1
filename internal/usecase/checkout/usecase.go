package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// UseCase use case инициации checkout: одна batch-инициация на всю корзину
type UseCase struct {
	cartRepo     CartRepository
	txRepo       TransactionRepository
	client       BookingAPIClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cartRepo CartRepository, txRepo TransactionRepository, client BookingAPIClient, logger Logger) *UseCase {
	return &UseCase{
		cartRepo:     cartRepo,
		txRepo:       txRepo,
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case инициации checkout.
// Вся корзина уходит одним batch-запросом: либо инициируются все слоты, либо ни одного.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Загружаем и проверяем корзину
	cart, err := uc.cartRepo.Get(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("Checkout: failed to load cart: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	if cart.IsEmpty() {
		uc.logger.Warn("Checkout: empty cart: user=%s", req.UserID)
		return nil, ErrEmptyCart
	}

	if cart.HasDuplicateKeys() {
		uc.logger.Warn("Checkout: duplicate slots in cart: user=%s", req.UserID)
		return nil, ErrDuplicateSlots
	}

	// 2. Advisory-блокировка против двойного checkout
	acquired, err := uc.txRepo.AcquireCheckoutLock(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("Checkout: failed to acquire lock: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to acquire checkout lock: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("Checkout: already in progress: user=%s", req.UserID)
		return nil, ErrCheckoutInProgress
	}

	// 3. Инициируем бронирования одним batch-запросом
	lines, err := uc.buildLines(cart)
	if err != nil {
		uc.releaseLock(ctx, req.UserID)
		uc.logger.Error("Checkout: failed to build booking lines: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	upstream, err := uc.client.BulkInitiate(ctx, req.Token, lines)
	if err != nil {
		uc.releaseLock(ctx, req.UserID)
		return nil, uc.mapUpstreamError(req.UserID, err)
	}

	// 4. Сверяем сумму ордера с суммой корзины
	wantAmount := domain.ToMinorUnits(cart.Total())
	if upstream.Order.Amount != wantAmount {
		uc.releaseLock(ctx, req.UserID)
		uc.logger.Error("Checkout: amount mismatch: user=%s, order=%d, cart=%d",
			req.UserID, upstream.Order.Amount, wantAmount)
		return nil, fmt.Errorf("%w: order=%d, cart=%d", ErrAmountMismatch, upstream.Order.Amount, wantAmount)
	}

	// 5. Сохраняем транзакцию: после выдачи ордера открывается платежный виджет
	now := uc.timeProvider.Now()
	tx := &domain.BookingTransaction{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		OrderID:     upstream.Order.ID,
		PaymentID:   upstream.PaymentID,
		AmountMinor: upstream.Order.Amount,
		Currency:    upstream.Order.Currency,
		Lines:       cart.Items,
		State:       domain.TxDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.Transition(domain.TxInitiated); err != nil {
		uc.releaseLock(ctx, req.UserID)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := tx.Transition(domain.TxAuthorizing); err != nil {
		uc.releaseLock(ctx, req.UserID)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := uc.txRepo.Save(ctx, tx); err != nil {
		uc.releaseLock(ctx, req.UserID)
		uc.logger.Error("Checkout: failed to save transaction: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to save transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("Checkout: initiated: user=%s, tx=%s, order=%s, amount=%d, slots=%d",
		req.UserID, tx.ID, tx.OrderID, tx.AmountMinor, len(tx.Lines))

	return &Response{
		TransactionID: tx.ID,
		PaymentID:     upstream.PaymentID,
		Order: OrderInfo{
			OrderID:  upstream.Order.ID,
			Amount:   upstream.Order.Amount,
			Currency: upstream.Order.Currency,
		},
		SlotCount: len(tx.Lines),
	}, nil
}

// buildLines собирает строки batch-запроса из корзины
func (uc *UseCase) buildLines(cart *domain.Cart) ([]bookingapi.CreateBookingRequest, error) {
	lines := make([]bookingapi.CreateBookingRequest, 0, len(cart.Items))
	for _, item := range cart.Items {
		start, err := domain.CombineDateAndHour(item.Date, item.Slot.Hour, 0)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", item.Key(), err)
		}

		lines = append(lines, bookingapi.CreateBookingRequest{
			CourtID:   item.CourtID,
			StartTime: start.Format(time.RFC3339),
			EndTime:   domain.OneHourLater(start).Format(time.RFC3339),
		})
	}
	return lines, nil
}

func (uc *UseCase) mapUpstreamError(userID string, err error) error {
	switch {
	case errors.Is(err, bookingapi.ErrSlotConflict):
		uc.logger.Warn("Checkout: slot conflict: user=%s: %v", userID, err)
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, bookingapi.ErrUnauthorized):
		uc.logger.Warn("Checkout: token rejected: user=%s", userID)
		return ErrUnauthorized
	case errors.Is(err, bookingapi.ErrUnavailable):
		uc.logger.Error("Checkout: booking API unavailable: user=%s: %v", userID, err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.logger.Error("Checkout: bulk initiate failed: user=%s: %v", userID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (uc *UseCase) releaseLock(ctx context.Context, userID string) {
	if err := uc.txRepo.ReleaseCheckoutLock(ctx, userID); err != nil {
		uc.logger.Error("Checkout: failed to release lock: user=%s: %v", userID, err)
	}
}
