package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

// TimeSlot один часовой слот в пределах дня
// Инвариант: на каждый час дня существует не более одного слота,
// час однозначно идентифицирует слот внутри дня
type TimeSlot struct {
	Hour      int              // Час суток (0-23, в пределах операционного окна)
	StartTime types.TimeString // Время начала ("05:00")
	EndTime   types.TimeString // Время конца ("06:00")
	Price     float64          // Цена за час (вычислена бэкендом по правилам тарификации)
	IsBooked  bool             // Слот уже забронирован
}

// DaySlot слоты одного корта на одну календарную дату
type DaySlot struct {
	Date  CalendarDate
	Slots []TimeSlot
}

// SlotForHour возвращает слот на указанный час или nil
// Сравнение всегда по целочисленному часу
func (d *DaySlot) SlotForHour(hour int) *TimeSlot {
	for i := range d.Slots {
		if d.Slots[i].Hour == hour {
			return &d.Slots[i]
		}
	}
	return nil
}

// CellState состояние ячейки сетки доступности
// Каждая ячейка классифицируется ровно в одно из четырех состояний
type CellState string

const (
	CellAvailable   CellState = "available"
	CellBooked      CellState = "booked"
	CellPast        CellState = "past"
	CellNonexistent CellState = "nonexistent"
)

// ClassifySlot классифицирует ячейку (день, час) по данным слота
// slot == nil означает отсутствие записи о слоте
func ClassifySlot(slot *TimeSlot, day CalendarDate, hour int, now time.Time) CellState {
	if slot == nil {
		return CellNonexistent
	}
	if IsSlotInPast(day, hour, now) {
		return CellPast
	}
	if slot.IsBooked {
		return CellBooked
	}
	return CellAvailable
}
