package dismiss_payment

import "errors"

var (
	// ErrNoActiveTransaction у пользователя нет незавершенного checkout
	ErrNoActiveTransaction = errors.New("no active checkout transaction")
	// ErrWrongState транзакция не находится в фазе оплаты
	ErrWrongState = errors.New("transaction is not in payment phase")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
