package verify_payment

// Request подтверждение платежа от платежного виджета
type Request struct {
	UserID    string
	Token     string
	OrderID   string
	PaymentID string
	Signature string
}

// ConfirmedBooking подтвержденное бронирование в ответе
type ConfirmedBooking struct {
	ID        string  `json:"id"`
	CourtID   string  `json:"courtId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}

// Response результат верификации платежа
type Response struct {
	TransactionID string             `json:"transactionId"`
	State         string             `json:"state"`
	Bookings      []ConfirmedBooking `json:"bookings"`
}
