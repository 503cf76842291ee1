package get_court_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
	"github.com/m04kA/SMC-CourtGateway/internal/api/middleware"
	getCourtGrid "github.com/m04kA/SMC-CourtGateway/internal/usecase/get_court_grid"
)

const (
	msgUnauthorized    = "сессия истекла, войдите заново"
	msgUpstreamFailure = "сервис бронирования временно недоступен"
	msgInvalidData     = "сервис бронирования вернул некорректные данные"
)

type Handler struct {
	useCase GetCourtGridUseCase
	logger  Logger
}

func NewHandler(useCase GetCourtGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/grid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	token := middleware.TokenFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getCourtGrid.Request{
		UserID: userID,
		Token:  token,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCourtGrid.ErrUnauthorized):
			h.logger.Warn("GET /courts/grid - Unauthorized: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, getCourtGrid.ErrUpstreamUnavailable):
			h.logger.Error("GET /courts/grid - Upstream unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamFailure)

		case errors.Is(err, getCourtGrid.ErrInvalidData):
			h.logger.Error("GET /courts/grid - Invalid upstream data: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgInvalidData)

		default:
			h.logger.Error("GET /courts/grid - Failed to build grid: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
