package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CourtGateway/internal/domain"
)

// proofClaimTTL срок хранения отметки об использованном платежном подтверждении
// Подтверждение одноразовое: повторный verify с тем же paymentId блокируется,
// пока отметка жива
const proofClaimTTL = 24 * time.Hour

// Repository хранилище транзакций checkout в Redis
// У пользователя может быть не более одной активной транзакции;
// advisory-блокировка checkout и одноразовые отметки платежных подтверждений
// живут рядом с транзакцией
type Repository struct {
	client *redis.Client
	txTTL  time.Duration
}

// NewRepository создает новый экземпляр хранилища транзакций
func NewRepository(client *redis.Client, txTTL time.Duration) *Repository {
	return &Repository{client: client, txTTL: txTTL}
}

func txKey(userID string) string {
	return "tx:" + userID
}

func lockKey(userID string) string {
	return "lock:checkout:" + userID
}

func proofKey(paymentID string) string {
	return "proof:" + paymentID
}

// Save сохраняет активную транзакцию пользователя
func (r *Repository) Save(ctx context.Context, tx *domain.BookingTransaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrMarshal, err)
	}
	if err := r.client.Set(ctx, txKey(tx.UserID), data, r.txTTL).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStorage, err)
	}
	return nil
}

// GetActive получает активную транзакцию пользователя
func (r *Repository) GetActive(ctx context.Context, userID string) (*domain.BookingTransaction, error) {
	val, err := r.client.Get(ctx, txKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive: %v", ErrStorage, err)
	}

	var tx domain.BookingTransaction
	if err := json.Unmarshal([]byte(val), &tx); err != nil {
		return nil, fmt.Errorf("%w: GetActive - unmarshal: %v", ErrMarshal, err)
	}
	return &tx, nil
}

// Delete удаляет транзакцию пользователя
func (r *Repository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, txKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStorage, err)
	}
	return nil
}

// AcquireCheckoutLock пытается захватить advisory-блокировку checkout пользователя
// Возвращает false, если транзакция уже в полете. Блокировка только клиентская:
// авторитетная проверка конфликтов слотов остается за booking API
func (r *Repository) AcquireCheckoutLock(ctx context.Context, userID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, lockKey(userID), "1", r.txTTL).Result()
	if err != nil {
		return false, fmt.Errorf("%w: AcquireCheckoutLock: %v", ErrStorage, err)
	}
	return ok, nil
}

// ReleaseCheckoutLock снимает advisory-блокировку checkout
// Снятие обязано быть детерминированным: вызывается при dismiss, отказе и подтверждении
func (r *Repository) ReleaseCheckoutLock(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, lockKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseCheckoutLock: %v", ErrStorage, err)
	}
	return nil
}

// ClaimProof отмечает платежное подтверждение использованным
// Возвращает false, если подтверждение уже было предъявлено ранее
func (r *Repository) ClaimProof(ctx context.Context, paymentID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, proofKey(paymentID), "1", proofClaimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("%w: ClaimProof: %v", ErrStorage, err)
	}
	return ok, nil
}

// ReleaseProof снимает отметку с подтверждения
// Используется только при транспортном сбое verify: определенного ответа не было,
// подтверждение можно предъявить повторно
func (r *Repository) ReleaseProof(ctx context.Context, paymentID string) error {
	if err := r.client.Del(ctx, proofKey(paymentID)).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseProof: %v", ErrStorage, err)
	}
	return nil
}
