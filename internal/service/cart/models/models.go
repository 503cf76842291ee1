package models

import (
	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

// ToggleSlotRequest запрос на добавление/удаление слота в корзине
type ToggleSlotRequest struct {
	CourtID   string
	CourtName string
	Date      domain.CalendarDate
	Slot      domain.TimeSlot
}

// CartItem строка корзины в ответе
type CartItem struct {
	CourtID   string           `json:"courtId"`
	CourtName string           `json:"courtName"`
	Date      string           `json:"date"`
	Hour      int              `json:"hour"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Price     float64          `json:"price"`
}

// CartResponse содержимое корзины пользователя
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// ToCartResponse преобразует доменную корзину в ответ сервиса
func ToCartResponse(cart *domain.Cart) *CartResponse {
	items := make([]CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, CartItem{
			CourtID:   it.CourtID,
			CourtName: it.CourtName,
			Date:      it.Date.String(),
			Hour:      it.Slot.Hour,
			StartTime: it.Slot.StartTime,
			EndTime:   it.Slot.EndTime,
			Price:     it.Price,
		})
	}

	return &CartResponse{
		Items: items,
		Total: cart.Total(),
		Count: len(items),
	}
}
