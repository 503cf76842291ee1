package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeStringFormat формат времени "HH:MM"
const timeStringFormat = "15:04"

// TimeString время суток в формате "HH:MM" без привязки к дате
// Используется для времени начала/конца слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeStringFormat, s); err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromHour создает TimeString из часа суток.
// Час нормализуется по модулю 24: конец слота 23:00 это "00:00"
func NewTimeStringFromHour(hour int) TimeString {
	hour = ((hour % 24) + 24) % 24
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата
func (t TimeString) Validate() error {
	_, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}
	return nil
}

// Hour возвращает час суток (0-23)
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %q", string(t))
	}
	return parsed.Hour(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через minutes минут
// Переход через полночь заворачивается в пределах суток ("23:30" + 60 = "00:30")
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeStringFormat)), nil
}

// MarshalJSON сериализует как JSON строку
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует из JSON строки с валидацией формата
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
