package conn

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"field-sales/internal/config"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// schema - DDL для встроенной sqlite-базы (локальный запуск и тесты).
// Схема боевой postgres-базы ведется отдельно.
//
//go:embed schema.sql
var schema string

func Connection(ctx context.Context, conf *config.DBConfig) (*sql.DB, error) {
	switch conf.Driver {
	case "sqlite":
		return OpenSQLite(ctx, conf.Path)
	default:
		return openPostgres(ctx, conf)
	}
}

func openPostgres(ctx context.Context, conf *config.DBConfig) (*sql.DB, error) {
	dns := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		conf.Host,
		conf.Port,
		conf.User,
		conf.Password,
		conf.DBName)
	db, err := sql.Open("postgres", dns)
	if err != nil {
		return nil, fmt.Errorf("не удалось установить соединение: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := ping(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite открывает (или создает) файл sqlite и применяет схему.
// path ":memory:" дает базу в памяти, живущую пока открыто единственное соединение.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: открытие %q: %w", path, err)
	}
	// один писатель; для :memory: еще и единственная копия базы
	db.SetMaxOpenConns(1)

	if err := ping(ctx, db); err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: применение схемы: %w", err)
	}
	return db, nil
}

func ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return fmt.Errorf("не удалось достучаться до БД: %w", err)
	}
	return nil
}
