package get_court_grid

import (
	"context"

	getCourtGrid "github.com/m04kA/SMC-CourtGateway/internal/usecase/get_court_grid"
)

type GetCourtGridUseCase interface {
	Execute(ctx context.Context, req *getCourtGrid.Request) (*getCourtGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
