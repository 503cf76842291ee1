package get_court_grid

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

// toDomainCourt нормализует корт из ответа API в доменную модель
func toDomainCourt(court bookingapi.Court) domain.Court {
	return domain.Court{
		ID:       court.ID,
		Name:     court.Name,
		Type:     domain.CourtType(court.Type),
		BaseRate: court.BaseRate,
		IsActive: court.IsActive,
	}
}

// buildCourtGrid строит сетку [час][дата] для одного корта.
// Даты из ответа API могут прийти в разном порядке и в разных форматах,
// поэтому сначала нормализуем их и сортируем хронологически.
func buildCourtGrid(court bookingapi.CourtWithAvailability, selected map[string]struct{}, now time.Time) (*CourtGrid, error) {
	days := make([]domain.DaySlot, 0, len(court.Availability))
	for _, da := range court.Availability {
		date, err := domain.ResolveDayBoundary(da.Date)
		if err != nil {
			return nil, fmt.Errorf("court %s: date %q: %w", court.ID, da.Date, err)
		}

		slots := make([]domain.TimeSlot, 0, len(da.Slots))
		for _, s := range da.Slots {
			slots = append(slots, domain.TimeSlot{
				Hour:      s.Hour.Int(),
				StartTime: types.TimeString(s.StartTime),
				EndTime:   types.TimeString(s.EndTime),
				Price:     s.Price,
				IsBooked:  s.IsBooked,
			})
		}

		days = append(days, domain.DaySlot{Date: date, Slots: slots})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	grid := &CourtGrid{
		CourtID:   court.ID,
		CourtName: court.Name,
		Type:      court.Type,
		BaseRate:  court.BaseRate,
		Days:      make([]string, 0, len(days)),
		Rows:      make([]GridRow, 0, domain.SlotsPerDay),
	}
	for _, d := range days {
		grid.Days = append(grid.Days, d.Date.String())
	}

	for _, hour := range domain.OperatingHours() {
		row := GridRow{
			Hour:  hour,
			Cells: make([]GridCell, 0, len(days)),
		}

		for _, d := range days {
			slot := d.SlotForHour(hour)
			cell := GridCell{
				State: domain.ClassifySlot(slot, d.Date, hour, now),
			}
			if slot != nil {
				cell.StartTime = slot.StartTime
				cell.EndTime = slot.EndTime
				cell.Price = slot.Price

				key := domain.SlotKey(court.ID, d.Date, slot.StartTime)
				_, cell.Selected = selected[key]
			}
			row.Cells = append(row.Cells, cell)
		}

		grid.Rows = append(grid.Rows, row)
	}

	return grid, nil
}
