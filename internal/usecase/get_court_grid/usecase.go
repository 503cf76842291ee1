package get_court_grid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtGateway/internal/integrations/bookingapi"
)

// UseCase use case построения сетки доступности кортов
type UseCase struct {
	client       BookingAPIClient
	cache        AvailabilityCache
	cartRepo     CartRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingAPIClient, cache AvailabilityCache, cartRepo CartRepository, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		cache:        cache,
		cartRepo:     cartRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем данные о кортах: сначала из кеша, при промахе из API
	courts, fromCache, err := uc.loadCourts(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	// 2. Загружаем корзину пользователя для пометки выбранных ячеек
	cart, err := uc.cartRepo.Get(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("GetCourtGrid: failed to load cart: user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	selected := make(map[string]struct{}, len(cart.Items))
	for _, key := range cart.Keys() {
		selected[key] = struct{}{}
	}

	// 3. Строим сетку по каждому корту
	now := uc.timeProvider.Now()
	resp := &Response{
		Courts:    make([]CourtGrid, 0, len(courts)),
		FromCache: fromCache,
	}

	for _, court := range courts {
		// Неактивные корты и корты с неизвестным типом в сетку не попадают
		dc := toDomainCourt(court.Court)
		if !dc.IsActive || !dc.IsValidType() {
			uc.logger.Warn("GetCourtGrid: skipping court: id=%s, type=%s, active=%t", dc.ID, dc.Type, dc.IsActive)
			continue
		}

		grid, err := buildCourtGrid(court, selected, now)
		if err != nil {
			uc.logger.Error("GetCourtGrid: failed to build grid: court=%s: %v", court.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		resp.Courts = append(resp.Courts, *grid)
	}

	uc.logger.Info("GetCourtGrid: user=%s, courts=%d, fromCache=%t", req.UserID, len(resp.Courts), fromCache)

	return resp, nil
}

// loadCourts читает сетку доступности через кеш (read-through)
func (uc *UseCase) loadCourts(ctx context.Context, token string) ([]bookingapi.CourtWithAvailability, bool, error) {
	payload, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warn("GetCourtGrid: cache read failed, falling back to API: %v", err)
	}

	if len(payload) > 0 {
		var courts []bookingapi.CourtWithAvailability
		if err := json.Unmarshal(payload, &courts); err == nil {
			return courts, true, nil
		}
		uc.logger.Warn("GetCourtGrid: cached payload is corrupt, falling back to API")
	}

	courts, err := uc.client.GetCourtsWithAvailability(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrUnauthorized):
			uc.logger.Warn("GetCourtGrid: token rejected by booking API")
			return nil, false, ErrUnauthorized
		case errors.Is(err, bookingapi.ErrUnavailable):
			uc.logger.Error("GetCourtGrid: booking API unavailable: %v", err)
			return nil, false, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		default:
			uc.logger.Error("GetCourtGrid: failed to fetch availability: %v", err)
			return nil, false, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if payload, err := json.Marshal(courts); err == nil {
		if err := uc.cache.Set(ctx, payload); err != nil {
			uc.logger.Warn("GetCourtGrid: failed to cache availability: %v", err)
		}
	}

	return courts, false, nil
}
