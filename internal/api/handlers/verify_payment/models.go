package verify_payment

// VerifyPaymentRequest HTTP request model: подтверждение от платежного виджета
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}
