package cart

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации корзины
	ErrMarshal = errors.New("cart.repository: failed to marshal cart")

	// ErrStorage возвращается при ошибке обращения к Redis
	ErrStorage = errors.New("cart.repository: storage error")
)
