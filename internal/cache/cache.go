// Package cache - кэш в оперативной памяти с временем жизни записей и фоновым уборщиком.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"field-sales/internal/metric"
)

type cacheItem[V any] struct {
	data      V
	expiresAt int64
}

// TTL хранит значения по строковому ключу. name - метка кэша в метриках.
type TTL[V any] struct {
	name              string
	items             map[string]cacheItem[V]
	defaultExpiration time.Duration //Это стандартное время жизни.
	cleanupInterval   time.Duration //Это частота работы нашего "уборщика", который чистит кеш
	sync.RWMutex
	ticker *time.Ticker
	now    func() time.Time
}

func New[V any](name string, defaultExpiration, cleanupInterval time.Duration) *TTL[V] {
	return &TTL[V]{
		name:              name,
		items:             make(map[string]cacheItem[V]),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		ticker:            time.NewTicker(cleanupInterval),
		now:               time.Now,
	}
}

func (ch *TTL[V]) Set(key string, value V) {
	ch.SetWithTTL(key, value, ch.defaultExpiration)
}

// SetWithTTL - запись со своим временем жизни; ttl <= 0 - без истечения.
func (ch *TTL[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	ch.Lock()
	defer ch.Unlock()
	_, exists := ch.items[key]
	//При сохранении указываем время жизни, когда нужно удалить объект
	var expiration int64
	if ttl > 0 {
		expiration = ch.now().Add(ttl).UnixNano()
	}
	ch.items[key] = cacheItem[V]{
		data:      value,
		expiresAt: expiration,
	}
	if !exists {
		metric.CacheSize.WithLabelValues(ch.name).Inc()
	}
}

func (ch *TTL[V]) Get(key string) (V, bool) {
	ch.RLock()
	defer ch.RUnlock()

	var zero V
	res, ok := ch.items[key]
	if !ok || ch.expired(res, ch.now().UnixNano()) {
		metric.CacheHitsTotal.WithLabelValues(ch.name, "miss").Inc()
		return zero, false
	}
	metric.CacheHitsTotal.WithLabelValues(ch.name, "hit").Inc()
	return res.data, true
}

func (ch *TTL[V]) Delete(key string) {
	ch.Lock()
	defer ch.Unlock()
	if _, ok := ch.items[key]; ok {
		delete(ch.items, key)
		metric.CacheSize.WithLabelValues(ch.name).Dec()
	}
}

func (ch *TTL[V]) Len() int {
	ch.RLock()
	defer ch.RUnlock()
	return len(ch.items)
}

func (ch *TTL[V]) expired(item cacheItem[V], now int64) bool {
	return item.expiresAt > 0 && now > item.expiresAt
}

// DeleteExpired удаляет просроченные записи и возвращает их количество.
func (ch *TTL[V]) DeleteExpired() int {
	ch.Lock()
	defer ch.Unlock()
	now := ch.now().UnixNano()
	deletedCounter := 0
	for key, item := range ch.items {
		if ch.expired(item, now) {
			delete(ch.items, key)
			deletedCounter++
		}
	}
	if deletedCounter > 0 {
		metric.CacheSize.WithLabelValues(ch.name).Sub(float64(deletedCounter))
	}
	return deletedCounter
}

func (ch *TTL[V]) GC(ctx context.Context) error {
	slog.DebugContext(ctx, "GC кэша запущен", slog.String("cache", ch.name))
	for {
		select {
		case <-ch.ticker.C:
			if n := ch.DeleteExpired(); n > 0 {
				slog.Debug("GC: удалены просроченные записи", slog.String("cache", ch.name), slog.Int("count", n))
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (ch *TTL[V]) Stop() {
	ch.ticker.Stop()
}
