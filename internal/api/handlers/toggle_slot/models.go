package toggle_slot

import (
	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	cartModels "github.com/m04kA/SMC-CourtGateway/internal/service/cart/models"
	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	CourtID   string  `json:"courtId"`
	CourtName string  `json:"courtName"`
	Date      string  `json:"date"` // "2025-12-03" или полный timestamp
	Hour      int     `json:"hour"`
	Price     float64 `json:"price"`
	IsBooked  bool    `json:"isBooked"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ToggleSlotRequest) ToServiceRequest() (*cartModels.ToggleSlotRequest, error) {
	date, err := domain.ResolveDayBoundary(r.Date)
	if err != nil {
		return nil, err
	}

	return &cartModels.ToggleSlotRequest{
		CourtID:   r.CourtID,
		CourtName: r.CourtName,
		Date:      date,
		Slot: domain.TimeSlot{
			Hour:      r.Hour,
			StartTime: types.NewTimeStringFromHour(r.Hour),
			EndTime:   types.NewTimeStringFromHour(r.Hour + domain.BookingDurationHours),
			Price:     r.Price,
			IsBooked:  r.IsBooked,
		},
	}, nil
}
