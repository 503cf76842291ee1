package models

// BookingItem бронирование пользователя в ответе шлюза
type BookingItem struct {
	ID            string  `json:"id"`
	CourtID       string  `json:"courtId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	TotalPrice    float64 `json:"totalPrice"`
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// MyBookingsResponse список бронирований пользователя
type MyBookingsResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Count    int           `json:"count"`
}
