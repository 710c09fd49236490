package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"field-sales/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "field-sales:cart:"

// RedisStore - корзины в Redis, чтобы их видели все экземпляры сервиса.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient подключается к Redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s недоступен: %w", addr, err)
	}
	return client, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (models.CartSession, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewCartSession(sessionID), nil
	}
	if err != nil {
		return models.CartSession{}, fmt.Errorf("ошибка чтения корзины из redis: %w", err)
	}
	return decode(sessionID, data)
}

func (s *RedisStore) Save(ctx context.Context, session models.CartSession) error {
	data, err := encode(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка записи корзины в redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("ошибка удаления корзины из redis: %w", err)
	}
	return nil
}
