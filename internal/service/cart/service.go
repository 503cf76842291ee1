package cart

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
	"github.com/m04kA/SMC-CourtGateway/internal/service/cart/models"
)

// Service сервис управления корзиной выбранных слотов
type Service struct {
	repo         CartRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создаёт новый сервис корзины
func NewService(repo CartRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Toggle добавляет слот в корзину или убирает его, если он уже выбран.
// Удаление выбранного слота разрешено всегда, добавление проходит проверки.
func (s *Service) Toggle(ctx context.Context, userID string, req *models.ToggleSlotRequest) (*models.CartResponse, error) {
	if req.CourtID == "" {
		return nil, fmt.Errorf("%w: court id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("[CartService.Toggle] Failed to load cart: userID=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	item := domain.SelectedSlot{
		CourtID:   req.CourtID,
		CourtName: req.CourtName,
		Date:      req.Date,
		Slot:      req.Slot,
		Price:     req.Slot.Price,
	}

	if !cart.IsSelected(item.Key()) {
		if err := s.validateSelectable(req); err != nil {
			s.logger.Warn("[CartService.Toggle] Slot rejected: userID=%s, key=%s, reason=%v", userID, item.Key(), err)
			return nil, err
		}
	}

	added := cart.Toggle(item)
	if err := s.repo.Save(ctx, userID, cart); err != nil {
		s.logger.Error("[CartService.Toggle] Failed to save cart: userID=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to save cart: %v", ErrInternal, err)
	}

	s.logger.Info("[CartService.Toggle] Slot toggled: userID=%s, key=%s, added=%t, items=%d", userID, item.Key(), added, len(cart.Items))

	return models.ToCartResponse(cart), nil
}

// Remove убирает строку корзины по индексу. Индекс вне диапазона игнорируется.
func (s *Service) Remove(ctx context.Context, userID string, index int) (*models.CartResponse, error) {
	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("[CartService.Remove] Failed to load cart: userID=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	cart.Remove(index)

	if err := s.repo.Save(ctx, userID, cart); err != nil {
		s.logger.Error("[CartService.Remove] Failed to save cart: userID=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to save cart: %v", ErrInternal, err)
	}

	return models.ToCartResponse(cart), nil
}

// Clear очищает корзину пользователя
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.Error("[CartService.Clear] Failed to clear cart: userID=%s, error=%v", userID, err)
		return fmt.Errorf("%w: failed to clear cart: %v", ErrInternal, err)
	}

	s.logger.Info("[CartService.Clear] Cart cleared: userID=%s", userID)
	return nil
}

// Get возвращает текущее содержимое корзины
func (s *Service) Get(ctx context.Context, userID string) (*models.CartResponse, error) {
	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("[CartService.Get] Failed to load cart: userID=%s, error=%v", userID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	return models.ToCartResponse(cart), nil
}

func (s *Service) validateSelectable(req *models.ToggleSlotRequest) error {
	if !domain.IsOperatingHour(req.Slot.Hour) {
		return fmt.Errorf("%w: hour=%d", ErrOutsideOperatingHours, req.Slot.Hour)
	}
	if req.Slot.IsBooked {
		return fmt.Errorf("%w: key=%s", ErrSlotBooked, domain.SlotKey(req.CourtID, req.Date, req.Slot.StartTime))
	}
	if domain.IsSlotInPast(req.Date, req.Slot.Hour, s.timeProvider.Now()) {
		return fmt.Errorf("%w: key=%s", ErrSlotInPast, domain.SlotKey(req.CourtID, req.Date, req.Slot.StartTime))
	}
	return nil
}
