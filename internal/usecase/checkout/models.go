package checkout

// Request запрос на инициацию checkout
type Request struct {
	UserID string
	Token  string
}

// OrderInfo данные платежного ордера для платежного виджета
type OrderInfo struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // в минорных единицах (пайсах)
	Currency string `json:"currency"`
}

// Response результат инициации checkout
type Response struct {
	TransactionID string    `json:"transactionId"`
	PaymentID     string    `json:"paymentId"`
	Order         OrderInfo `json:"order"`
	SlotCount     int       `json:"slotCount"`
}
