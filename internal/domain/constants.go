package domain

// Операционное окно кортов: 19 часовых слотов с 05:00 до 23:00
// Последний слот начинается в 23:00 и заканчивается в 00:00 следующего дня
const (
	OperatingOpenHour  = 5
	OperatingCloseHour = 23
	SlotsPerDay        = OperatingCloseHour - OperatingOpenHour + 1

	// BookingDurationHours фиксированная длительность бронирования
	BookingDurationHours = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CurrencyINR валюта всех платежей (минорная единица - пайса, 1/100 рупии)
const CurrencyINR = "INR"

// MinorUnitsPerRupee коэффициент пересчета рупий в минорные единицы платежного шлюза
const MinorUnitsPerRupee = 100

// OperatingHours возвращает список рабочих часов в порядке возрастания
func OperatingHours() []int {
	hours := make([]int, 0, SlotsPerDay)
	for h := OperatingOpenHour; h <= OperatingCloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// IsOperatingHour проверяет, что час входит в операционное окно
func IsOperatingHour(hour int) bool {
	return hour >= OperatingOpenHour && hour <= OperatingCloseHour
}

// ToMinorUnits конвертирует сумму в рупиях в минорные единицы
// Используется для сверки суммы корзины с amount платежного ордера
func ToMinorUnits(amount float64) int64 {
	if amount < 0 {
		return 0
	}
	return int64(amount*MinorUnitsPerRupee + 0.5)
}
