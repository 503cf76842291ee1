package domain

// CourtType тип корта
type CourtType string

const (
	CourtTypeSingle CourtType = "SINGLE"
	CourtTypeDouble CourtType = "DOUBLE"
)

// Court represents a bookable court
// Справочные данные: в рамках сессии считаются неизменяемыми
type Court struct {
	ID       string
	Name     string
	Type     CourtType
	BaseRate float64
	IsActive bool
}

// IsValidType проверяет корректность типа корта
func (c *Court) IsValidType() bool {
	return c.Type == CourtTypeSingle || c.Type == CourtTypeDouble
}
