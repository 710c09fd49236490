package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"field-sales/internal/config"
	"field-sales/internal/logger/sl"
	"field-sales/internal/trace"
)

func main() {
	sl.Setup(os.Stdout, slog.LevelInfo)

	// 1. Главный контекст, который передаем
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("ошибка конфигурации", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Trace.Enabled {
		tp, err := trace.InitTracer(ctx, cfg.Trace.ServiceName)
		if err != nil {
			slog.Error("Failed to init tracer", sl.Err(err))
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Tracer shutdown error", sl.Err(err))
			}
		}()
	}

	application, err := NewApplication(ctx, cfg)
	if err != nil {
		slog.Error("Ошибка при инициализации приложения", sl.Err(err))
		os.Exit(1)
	}
	if err = application.Run(ctx); err != nil {
		slog.Error("Ошибка запуска приложения", sl.Err(err))
		os.Exit(1)
	}
	slog.Info("Сервис успешно остановлен")
}
