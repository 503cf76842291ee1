package transaction

import "errors"

var (
	// ErrTransactionNotFound возвращается, когда активной транзакции пользователя нет
	ErrTransactionNotFound = errors.New("transaction.repository: transaction not found")

	// ErrMarshal возвращается при ошибке сериализации транзакции
	ErrMarshal = errors.New("transaction.repository: failed to marshal transaction")

	// ErrStorage возвращается при ошибке обращения к Redis
	ErrStorage = errors.New("transaction.repository: storage error")
)
