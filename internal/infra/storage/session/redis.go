package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// RedisStore хранит сессии как JSON значения с TTL
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Save сохраняет сессию на ttl. Неположительный ttl отклоняется
func (s *RedisStore) Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: non-positive ttl %s", ErrStore, ttl)
	}

	data, err := json.Marshal(toRecord(sess))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, s.key(sess.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStore, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return rec.toDomain(), nil
}

// Delete удаляет сессию. Удаление отсутствующей сессии не является ошибкой
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

type record struct {
	Token     string    `json:"token"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	City      *string   `json:"city,omitempty"`
	GarageID  *string   `json:"garageId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func toRecord(s *domain.Session) record {
	return record{
		Token:     s.Token,
		Phone:     s.Phone,
		Name:      s.Name,
		City:      s.City,
		GarageID:  s.GarageID,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func (r record) toDomain() *domain.Session {
	return &domain.Session{
		Token:     r.Token,
		Phone:     r.Phone,
		Name:      r.Name,
		City:      r.City,
		GarageID:  r.GarageID,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}
