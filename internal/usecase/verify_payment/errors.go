package verify_payment

import "errors"

var (
	// ErrNoActiveTransaction у пользователя нет незавершенного checkout
	ErrNoActiveTransaction = errors.New("no active checkout transaction")
	// ErrOrderMismatch ордер из подтверждения не относится к активной транзакции
	ErrOrderMismatch = errors.New("order does not match active transaction")
	// ErrWrongState транзакция не ожидает подтверждения платежа
	ErrWrongState = errors.New("transaction is not awaiting payment confirmation")
	// ErrProofAlreadyUsed это подтверждение платежа уже было отправлено на верификацию
	ErrProofAlreadyUsed = errors.New("payment proof already submitted")
	// ErrVerificationRejected бэкенд отклонил подтверждение платежа
	ErrVerificationRejected = errors.New("payment verification rejected")
	// ErrUpstreamUnavailable внешний API недоступен, верификацию можно повторить
	ErrUpstreamUnavailable = errors.New("booking API unavailable, retry verification")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
