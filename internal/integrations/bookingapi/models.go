package bookingapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SlotHour час суток в ответе booking API
// Исторически поле приходит то числом (5), то строкой с ведущим нулем ("05");
// нормализуем оба представления в int на границе десериализации
type SlotHour int

// UnmarshalJSON принимает число или строку
func (h *SlotHour) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("invalid slot hour %q: %w", str, err)
		}
		*h = SlotHour(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid slot hour %s: %w", s, err)
	}
	*h = SlotHour(v)
	return nil
}

// Int возвращает нормализованное целочисленное значение
func (h SlotHour) Int() int {
	return int(h)
}

// Court модель корта из booking API
type Court struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"` // SINGLE | DOUBLE
	BaseRate float64 `json:"baseRate"`
	IsActive bool    `json:"isActive"`
}

// TimeSlot модель часового слота из booking API
type TimeSlot struct {
	StartTime string   `json:"startTime"` // "05:00"
	EndTime   string   `json:"endTime"`   // "06:00"
	Hour      SlotHour `json:"hour"`
	Price     float64  `json:"price"`
	IsBooked  bool     `json:"isBooked"`
}

// DayAvailability слоты корта на одну дату
// Date может прийти как "2025-12-03", так и полным timestamp
type DayAvailability struct {
	Date           string     `json:"date"`
	DayOfWeek      int        `json:"dayOfWeek"`
	DayName        string     `json:"dayName"`
	TotalSlots     int        `json:"totalSlots"`
	BookedSlots    int        `json:"bookedSlots"`
	AvailableSlots int        `json:"availableSlots"`
	Slots          []TimeSlot `json:"slots"`
}

// CourtWithAvailability корт вместе с сеткой доступности
type CourtWithAvailability struct {
	Court
	Availability []DayAvailability `json:"availability"`
}

// Booking модель бронирования из booking API
type Booking struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	CourtID       string  `json:"courtId"`
	StartTime     string  `json:"startTime"` // ISO 8601
	EndTime       string  `json:"endTime"`   // ISO 8601
	Date          string  `json:"date"`
	TotalPrice    float64 `json:"totalPrice"`
	PricePerHour  float64 `json:"pricePerHour"`
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"` // CONFIRMED | CANCELLED | PENDING
	CreatedAt     string  `json:"createdAt"`
}

// CreateBookingRequest строка batch-запроса на инициацию бронирования
type CreateBookingRequest struct {
	CourtID   string `json:"courtId"`
	StartTime string `json:"startTime"` // ISO 8601
	EndTime   string `json:"endTime"`   // ISO 8601
}

// PaymentOrder дескриптор платежного ордера, выданный бэкендом
// Amount в минорных единицах валюты (пайсах)
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// BulkInitiateResponse ответ на batch-инициацию бронирований
type BulkInitiateResponse struct {
	Bookings  []Booking    `json:"bookings"`
	Order     PaymentOrder `json:"order"`
	PaymentID string       `json:"paymentId"`
}

// VerifyPaymentRequest подтверждение платежа для финальной верификации
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// ErrorResponse модель ошибки booking API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
