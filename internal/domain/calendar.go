package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

var (
	// ErrInvalidDateInput возвращается при нераспознаваемой строке даты
	ErrInvalidDateInput = errors.New("domain: invalid date input")

	// ErrHourOutOfRange возвращается при часе вне диапазона [0, 23]
	ErrHourOutOfRange = errors.New("domain: hour out of range")

	// ErrMinuteOutOfRange возвращается при минуте вне диапазона [0, 59]
	ErrMinuteOutOfRange = errors.New("domain: minute out of range")
)

// CalendarDate календарная дата без компонента времени
// Якорится на локальную полночь: сравнение дней всегда покомпонентное,
// поэтому дата не может "уехать" на соседний день из-за таймзоны
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate извлекает календарную дату из момента времени
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ResolveDayBoundary канонизирует строку даты в календарную дату
// Принимает как дату без времени ("2025-12-03"), так и полный timestamp
// ("2025-12-03T00:00:00.000Z"). Компоненты (год, месяц, день) извлекаются
// напрямую из строки: построение даты через абсолютный момент времени
// сдвигает дату на сутки в таймзонах западнее UTC
func ResolveDayBoundary(input string) (CalendarDate, error) {
	s := strings.TrimSpace(input)
	if len(s) < len(DateFormat) {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDateInput, input)
	}

	datePart := s[:len(DateFormat)]
	parsed, err := time.Parse(DateFormat, datePart)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDateInput, input)
	}

	// Если за датой следует хвост, он обязан начинаться с разделителя timestamp
	if len(s) > len(DateFormat) && s[len(DateFormat)] != 'T' && s[len(DateFormat)] != ' ' {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDateInput, input)
	}

	return NewCalendarDate(parsed), nil
}

// String возвращает каноническое представление "YYYY-MM-DD"
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero возвращает true для нулевой даты
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time возвращает локальную полночь этой даты
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Equal проверяет совпадение календарных дат
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Before возвращает true, если d строго раньше other
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// AddDays возвращает дату через n календарных дней
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.Time().AddDate(0, 0, n))
}

// CombineDateAndHour возвращает абсолютный момент локального времени hour:minute этой даты
func CombineDateAndHour(day CalendarDate, hour, minute int) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrHourOutOfRange, hour)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrMinuteOutOfRange, minute)
	}
	return time.Date(day.Year, day.Month, day.Day, hour, minute, 0, 0, time.Local), nil
}

// OneHourLater возвращает момент ровно через час
// Работает с абсолютным моментом: переходы через сутки, месяц, год и DST корректны
func OneHourLater(t time.Time) time.Time {
	return t.Add(time.Hour)
}

// IsSlotInPast проверяет, что слот уже недоступен по времени
// Слот в прошлом, если его дата раньше сегодняшней, либо дата сегодняшняя
// и час слота <= текущего часа (текущий час считается уже недоступным)
func IsSlotInPast(day CalendarDate, hour int, now time.Time) bool {
	today := NewCalendarDate(now)
	if day.Before(today) {
		return true
	}
	if today.Before(day) {
		return false
	}
	return hour <= now.Hour()
}

// SlotKey строит канонический ключ слота: court + дата + время начала
// Единственное основание равенства слотов; два слота идентичны тогда и только
// тогда, когда их ключи совпадают
func SlotKey(courtID string, day CalendarDate, startTime types.TimeString) string {
	return courtID + "|" + day.String() + "|" + startTime.String()
}
