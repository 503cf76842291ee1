package get_court_grid

import "errors"

var (
	// ErrUnauthorized токен отклонён внешним API
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstreamUnavailable внешний API недоступен
	ErrUpstreamUnavailable = errors.New("booking API unavailable")
	// ErrInvalidData внешний API вернул некорректные данные
	ErrInvalidData = errors.New("invalid availability data")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
