package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"field-sales/internal/app"
	"field-sales/internal/cache"
	"field-sales/internal/cart"
	"field-sales/internal/config"
	"field-sales/internal/db/conn"
	"field-sales/internal/db/repository"
	"field-sales/internal/handler"
	"field-sales/internal/kafka"
	"field-sales/internal/logger/sl"
	"field-sales/internal/models"
	"field-sales/internal/service"

	"github.com/redis/go-redis/v9"
)

type Application struct {
	cfg        *config.Config
	db         *sql.DB
	redis      *redis.Client
	srv        *app.Server
	consumer   *kafka.SubmissionConsumer
	producer   *kafka.Producer
	catalog    *service.CatalogService
	orderCache *cache.TTL[models.Order]
	memCarts   *cart.MemoryStore
}

func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := &Application{cfg: cfg}

	// 1. Подключение к БД
	dbConn, err := conn.Connection(ctx, &cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("подключение к БД: %w", err)
	}
	a.db = dbConn

	// 2. Хранилище корзин: Redis, если задан адрес, иначе память процесса
	var carts service.CartStore
	if cfg.Redis.Addr != "" {
		client, err := cart.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			a.closeStores()
			return nil, fmt.Errorf("подключение к Redis: %w", err)
		}
		a.redis = client
		carts = cart.NewRedisStore(client, cfg.Redis.CartTTL)
	} else {
		a.memCarts = cart.NewMemoryStore(cfg.Redis.CartTTL, cfg.Cache.CleanupInterval)
		carts = a.memCarts
	}

	// 3. Kafka: топики, продюсер событий, консьюмер заявок
	var publisher service.EventPublisher = kafka.NopPublisher{}
	if cfg.KafkaConfig.Enabled {
		if err := kafka.EnsureTopicsExist(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, cfg.KafkaConfig.IntakeTopic); err != nil {
			a.closeStores()
			return nil, fmt.Errorf("создание Kafka topic: %w", err)
		}
		producer, err := kafka.NewProducer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic)
		if err != nil {
			a.closeStores()
			return nil, fmt.Errorf("создание Kafka Producer: %w", err)
		}
		a.producer = producer
		publisher = producer
	}

	// 4. Сборка слоев
	a.orderCache = cache.New[models.Order]("orders", cfg.Cache.CatalogTTL, cfg.Cache.CleanupInterval)
	a.catalog = service.NewCatalogService(repository.NewCatalogRepository(dbConn), cfg.Cache.CatalogTTL, cfg.Cache.CleanupInterval)
	cartService := service.NewCartService(carts, a.catalog)
	submissions := service.NewSubmissionService(repository.NewOrderRepository(dbConn), a.orderCache, a.catalog, carts, publisher)

	if cfg.KafkaConfig.Enabled {
		consumer, err := kafka.NewSubmissionConsumer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.IntakeTopic, submissions.HandleSubmissionMessage)
		if err != nil {
			a.Shutdown(ctx)
			return nil, fmt.Errorf("создание Kafka Consumer: %w", err)
		}
		a.consumer = consumer
	}

	a.srv = app.NewServer(cfg.Trace.ServiceName, handler.Handlers{
		Orders:  handler.NewOrderHandler(submissions),
		Catalog: handler.NewCatalogHandler(a.catalog),
		Carts:   handler.NewCartHandler(cartService, submissions),
	})
	return a, nil
}

func (a *Application) Run(ctx context.Context) error {
	if err := a.catalog.Warm(ctx); err != nil {
		slog.WarnContext(ctx, "Не удалось прогреть кэш каталога", sl.Err(err))
	}

	var wg sync.WaitGroup
	background := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("фоновая задача остановилась с ошибкой", slog.String("task", name), sl.Err(err))
			}
		}()
	}

	// Уборщики кэшей
	background("catalog-gc", a.catalog.GC)
	background("orders-gc", a.orderCache.GC)
	if a.memCarts != nil {
		background("carts-gc", a.memCarts.GC)
	}
	// Запуск консьюмера
	if a.consumer != nil {
		slog.Info("Запуск Consumer...", slog.String("topic", a.cfg.KafkaConfig.IntakeTopic))
		background("consumer", a.consumer.Start)
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Запуск HTTP сервера", slog.String("addr", a.cfg.HTTP.Addr))
		if err := a.srv.Run(a.cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидание сигнала завершения
	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Получен сигнал завершения (Graceful Shutdown)...")
	case err := <-serverErr:
		runErr = fmt.Errorf("критическая ошибка сервера: %w", err)
	}

	// Даем 5 секунд на завершение текущих запросов
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.Shutdown(shutdownCtx)
	wg.Wait()

	return runErr
}

func (a *Application) Shutdown(ctx context.Context) {
	if a.srv != nil {
		if err := a.srv.Stop(ctx); err != nil {
			slog.Warn("Ошибка остановки HTTP сервера", sl.Err(err))
		}
	}
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			slog.Warn("Ошибка остановки Kafka Consumer", sl.Err(err))
		}
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			slog.Warn("Ошибка остановки Kafka Producer", sl.Err(err))
		}
	}
	if a.catalog != nil {
		a.catalog.Stop()
	}
	if a.orderCache != nil {
		a.orderCache.Stop()
	}
	a.closeStores()
}

func (a *Application) closeStores() {
	if a.memCarts != nil {
		a.memCarts.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("Ошибка закрытия Redis", sl.Err(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			slog.Warn("Ошибка закрытия БД", sl.Err(err))
		}
	}
}
