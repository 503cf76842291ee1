package bookingapi

import "errors"

var (
	// ErrUnauthorized возвращается, когда booking API отверг токен пользователя
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")

	// ErrSlotConflict возвращается, когда слот уже занят на стороне бэкенда
	// Бэкенд - единственный источник истины по конфликтам бронирования
	ErrSlotConflict = errors.New("bookingapi client: slot already booked")

	// ErrVerificationRejected возвращается, когда бэкенд отверг платежное подтверждение
	// (несовпадение подписи, неизвестный ордер)
	ErrVerificationRejected = errors.New("bookingapi client: payment verification rejected")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")

	// ErrUnavailable возвращается при транспортном сбое или 5xx до определенного ответа
	// Вызывающая сторона вправе повторить запрос
	ErrUnavailable = errors.New("bookingapi client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")
)
