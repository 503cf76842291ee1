package remove_cart_item

import (
	"context"

	cartModels "github.com/m04kA/SMC-CourtGateway/internal/service/cart/models"
)

type CartService interface {
	Remove(ctx context.Context, userID string, index int) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
