package dismiss_payment

import (
	"context"

	dismissPayment "github.com/m04kA/SMC-CourtGateway/internal/usecase/dismiss_payment"
)

type DismissPaymentUseCase interface {
	Execute(ctx context.Context, req *dismissPayment.Request) (*dismissPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
