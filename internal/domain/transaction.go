package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrIllegalTransition возвращается при недопустимом переходе состояния транзакции
var ErrIllegalTransition = errors.New("domain: illegal transaction state transition")

// TransactionState состояние транзакции бронирования
// Явное тегированное состояние вместо набора булевых флагов:
// недопустимые комбинации непредставимы
type TransactionState string

const (
	TxDraft       TransactionState = "draft"
	TxInitiated   TransactionState = "initiated"
	TxAuthorizing TransactionState = "authorizing"
	TxVerifying   TransactionState = "verifying"
	TxConfirmed   TransactionState = "confirmed"
	TxFailed      TransactionState = "failed"
)

// validTransitions допустимые переходы состояний
// draft -> initiated -> authorizing -> verifying -> {confirmed, failed}
// authorizing -> draft: пользователь закрыл платежный виджет (abandonment, не ошибка)
// authorizing -> failed: виджет сообщил об отказе платежа
// verifying -> authorizing: транспортный сбой до определенного ответа, verify можно повторить
var validTransitions = map[TransactionState][]TransactionState{
	TxDraft:       {TxInitiated},
	TxInitiated:   {TxAuthorizing},
	TxAuthorizing: {TxVerifying, TxDraft, TxFailed},
	TxVerifying:   {TxConfirmed, TxFailed, TxAuthorizing},
	TxConfirmed:   {},
	TxFailed:      {},
}

// CanTransitionTo проверяет допустимость перехода
func (s TransactionState) CanTransitionTo(next TransactionState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true для терминальных состояний
// Из failed нет автоматического ретрая - новая попытка начинается с draft
func (s TransactionState) IsTerminal() bool {
	return s == TxConfirmed || s == TxFailed
}

// BookingTransaction одна попытка checkout: от инициации до подтверждения платежа
// Эфемерная сущность, принадлежит оркестратору на время одной транзакции;
// никогда не разделяется между параллельными checkout одного пользователя
type BookingTransaction struct {
	ID          string
	UserID      string
	OrderID     string           // ID платежного ордера, выданный бэкендом при инициации
	PaymentID   string           // ID платежной записи, выданный бэкендом при инициации
	AmountMinor int64            // Сумма ордера в минорных единицах (пайсах)
	Currency    string
	Lines       []SelectedSlot   // Строки корзины на момент инициации
	State       TransactionState
	FailReason  string           // Причина отказа (для state = failed)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Transition переводит транзакцию в новое состояние
// Недопустимый переход - ошибка программирования, наружу отдается ErrIllegalTransition
func (t *BookingTransaction) Transition(next TransactionState) error {
	if !t.State.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, t.State, next)
	}
	t.State = next
	t.UpdatedAt = time.Now()
	return nil
}

// InFlight возвращает true, пока транзакция занимает advisory-блокировку checkout
func (t *BookingTransaction) InFlight() bool {
	return t.State == TxInitiated || t.State == TxAuthorizing || t.State == TxVerifying
}
