// Package cart хранит рабочие корзины устройств между запросами.
// Корзина сохраняется целиком JSON-снимком: в памяти процесса или в Redis.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"field-sales/internal/cache"
	"field-sales/internal/models"
)

const cacheName = "cart"

// MemoryStore - корзины в памяти процесса. Используется, когда Redis не настроен.
type MemoryStore struct {
	items *cache.TTL[[]byte]
}

func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		items: cache.New[[]byte](cacheName, ttl, cleanupInterval),
	}
}

// Load возвращает сохраненную корзину или пустую, если ее нет.
func (s *MemoryStore) Load(_ context.Context, sessionID string) (models.CartSession, error) {
	data, ok := s.items.Get(sessionID)
	if !ok {
		return models.NewCartSession(sessionID), nil
	}
	return decode(sessionID, data)
}

func (s *MemoryStore) Save(_ context.Context, session models.CartSession) error {
	data, err := encode(session)
	if err != nil {
		return err
	}
	s.items.Set(session.SessionID, data)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.items.Delete(sessionID)
	return nil
}

// Snapshot - сохраненные байты корзины как есть.
func (s *MemoryStore) Snapshot(sessionID string) ([]byte, bool) {
	return s.items.Get(sessionID)
}

func (s *MemoryStore) GC(ctx context.Context) error {
	return s.items.GC(ctx)
}

func (s *MemoryStore) Stop() {
	s.items.Stop()
}

func encode(session models.CartSession) ([]byte, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации корзины %s: %w", session.SessionID, err)
	}
	return data, nil
}

func decode(sessionID string, data []byte) (models.CartSession, error) {
	session := models.NewCartSession(sessionID)
	if err := json.Unmarshal(data, &session); err != nil {
		return models.CartSession{}, fmt.Errorf("ошибка чтения корзины %s: %w", sessionID, err)
	}
	if session.Items == nil {
		session.Items = []models.CartItem{}
	}
	return session, nil
}
