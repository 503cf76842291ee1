package get_cart

import (
	"context"

	cartModels "github.com/m04kA/SMC-CourtGateway/internal/service/cart/models"
)

type CartService interface {
	Get(ctx context.Context, userID string) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
