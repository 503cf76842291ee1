package checkout

import "errors"

var (
	// ErrEmptyCart в корзине нет слотов для оформления
	ErrEmptyCart = errors.New("cart is empty")
	// ErrDuplicateSlots корзина содержит дубликаты слотов
	ErrDuplicateSlots = errors.New("cart contains duplicate slots")
	// ErrCheckoutInProgress у пользователя уже есть незавершенный checkout
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	// ErrSlotConflict один из слотов уже занят во внешнем API
	ErrSlotConflict = errors.New("slot already booked")
	// ErrAmountMismatch сумма ордера не совпадает с суммой корзины
	ErrAmountMismatch = errors.New("order amount does not match cart total")
	// ErrUnauthorized токен отклонён внешним API
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstreamUnavailable внешний API недоступен
	ErrUpstreamUnavailable = errors.New("booking API unavailable")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
