package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheKey единый ключ кеша: доступность кортов общая для всех пользователей
const cacheKey = "cache:courts_availability"

var (
	// ErrStorage возвращается при ошибке обращения к Redis
	ErrStorage = errors.New("availability.repository: storage error")
)

// Repository read-through кеш сырого ответа booking API о доступности кортов
// Консистентность через invalidate-and-refetch: после подтвержденной транзакции
// кеш сбрасывается целиком, частичных правок нет
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает новый экземпляр кеша доступности
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Get возвращает закешированный payload или nil при пустом кеше
func (r *Repository) Get(ctx context.Context) ([]byte, error) {
	val, err := r.client.Get(ctx, cacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}
	return []byte(val), nil
}

// Set сохраняет payload с TTL
func (r *Repository) Set(ctx context.Context, payload []byte) error {
	if err := r.client.Set(ctx, cacheKey, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrStorage, err)
	}
	return nil
}

// Invalidate сбрасывает кеш
func (r *Repository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrStorage, err)
	}
	return nil
}
