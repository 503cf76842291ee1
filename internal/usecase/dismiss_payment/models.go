package dismiss_payment

// Request закрытие платежного виджета.
// Пустой FailReason означает, что пользователь закрыл виджет сам (abandonment);
// непустой - виджет сообщил об отказе платежа
type Request struct {
	UserID     string
	FailReason string
}

// Response результат закрытия платежного виджета
type Response struct {
	State string `json:"state"`
}
