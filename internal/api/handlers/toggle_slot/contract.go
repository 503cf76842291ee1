package toggle_slot

import (
	"context"

	cartModels "github.com/m04kA/SMC-CourtGateway/internal/service/cart/models"
)

type CartService interface {
	Toggle(ctx context.Context, userID string, req *cartModels.ToggleSlotRequest) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
