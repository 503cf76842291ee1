package cart

import "errors"

var (
	// ErrSlotInPast слот уже начался или прошёл
	ErrSlotInPast = errors.New("slot is in the past")
	// ErrSlotBooked слот уже забронирован другим пользователем
	ErrSlotBooked = errors.New("slot is already booked")
	// ErrOutsideOperatingHours час вне рабочего окна корта
	ErrOutsideOperatingHours = errors.New("hour is outside operating window")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
