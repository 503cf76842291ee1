package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
)

// Repository хранилище корзин пользователей в Redis
// Корзина - сессионное состояние: живет с TTL и целиком перезаписывается
// при каждой мутации, частичных обновлений нет
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает новый экземпляр хранилища корзин
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Get получает корзину пользователя
// Отсутствие записи - это пустая корзина, не ошибка
func (r *Repository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	val, err := r.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrMarshal, err)
	}
	return &cart, nil
}

// Save сохраняет корзину пользователя, продлевая TTL
func (r *Repository) Save(ctx context.Context, userID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrMarshal, err)
	}
	if err := r.client.Set(ctx, cartKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStorage, err)
	}
	return nil
}

// Delete удаляет корзину пользователя
func (r *Repository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStorage, err)
	}
	return nil
}
