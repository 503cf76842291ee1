package clear_cart

import "context"

type CartService interface {
	Clear(ctx context.Context, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
