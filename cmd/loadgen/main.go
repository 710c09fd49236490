package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"field-sales/internal/config"
	"field-sales/internal/kafka"
	"field-sales/internal/logger/sl"
)

// loadgen отправляет в топик приема случайные заказы и визиты.
func main() {
	sl.Setup(os.Stdout, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("ошибка конфигурации", sl.Err(err))
		os.Exit(1)
	}
	lg := cfg.LoadGen
	if lg.Interval <= 0 || len(lg.UserIDs) == 0 || len(lg.RetailerIDs) == 0 || len(lg.ProductIDs) == 0 {
		slog.Error("LOADGEN_INTERVAL, LOADGEN_USERS, LOADGEN_RETAILERS и LOADGEN_PRODUCTS должны быть заданы")
		os.Exit(1)
	}

	if err := kafka.EnsureTopicsExist(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.IntakeTopic); err != nil {
		slog.Error("не удалось создать топик", sl.Err(err))
		os.Exit(1)
	}
	producer, err := kafka.NewProducer(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.IntakeTopic)
	if err != nil {
		slog.Error("не удалось создать продюсера", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			slog.Warn("ошибка закрытия продюсера", sl.Err(err))
		}
	}()

	ticker := time.NewTicker(lg.Interval)
	defer ticker.Stop()

	sent := 0
	for sent < lg.Count {
		envelope := kafka.FakeEnvelope(lg.UserIDs, lg.RetailerIDs, lg.ProductIDs)
		if err := producer.Send(ctx, envelope); err != nil {
			slog.Error("не удалось отправить заявку", slog.String("kind", envelope.Kind), sl.Err(err))
		} else {
			sent++
			slog.Info("заявка отправлена", slog.String("kind", envelope.Kind), slog.Int("n", sent))
		}

		select {
		case <-ctx.Done():
			slog.Info("остановлено по сигналу", slog.Int("sent", sent))
			return
		case <-ticker.C:
		}
	}
	slog.Info("готово", slog.Int("sent", sent))
}
