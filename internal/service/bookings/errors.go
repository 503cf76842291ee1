package bookings

import "errors"

var (
	// ErrUnauthorized токен отклонён внешним API
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")
	// ErrUpstreamUnavailable внешний API недоступен
	ErrUpstreamUnavailable = errors.New("booking API unavailable")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
