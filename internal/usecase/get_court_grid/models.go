package get_court_grid

import (
	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/pkg/types"
)

// Request запрос на построение сетки доступности
type Request struct {
	UserID string
	Token  string
}

// GridCell ячейка сетки: один час на одну дату
type GridCell struct {
	State     domain.CellState `json:"state"`
	StartTime types.TimeString `json:"startTime,omitempty"`
	EndTime   types.TimeString `json:"endTime,omitempty"`
	Price     float64          `json:"price,omitempty"`
	Selected  bool             `json:"selected"`
}

// GridRow строка сетки: один час по всем датам
type GridRow struct {
	Hour  int        `json:"hour"`
	Cells []GridCell `json:"cells"`
}

// CourtGrid сетка доступности одного корта.
// Колонки Days отсортированы хронологически, строки Rows идут по рабочим часам.
type CourtGrid struct {
	CourtID   string    `json:"courtId"`
	CourtName string    `json:"courtName"`
	Type      string    `json:"type"`
	BaseRate  float64   `json:"baseRate"`
	Days      []string  `json:"days"`
	Rows      []GridRow `json:"rows"`
}

// Response сетки доступности по всем кортам
type Response struct {
	Courts    []CourtGrid `json:"courts"`
	FromCache bool        `json:"-"`
}
