package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP        HTTPConfig
	DB          DBConfig
	Redis       RedisConfig
	Cache       CacheConfig
	KafkaConfig KafkaConfig
	Trace       TraceConfig
	LoadGen     LoadGenConfig
}

type HTTPConfig struct {
	Addr string
}

type DBConfig struct {
	Driver   string // postgres | sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Path     string // файл БД для sqlite
}

// RedisConfig - хранилище корзин. Пустой адрес - корзины в памяти процесса.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CartTTL  time.Duration
}

type CacheConfig struct {
	CatalogTTL      time.Duration
	CleanupInterval time.Duration
}

type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	Topic       string
	IntakeTopic string
	Group       string
}

type TraceConfig struct {
	Enabled     bool
	ServiceName string
}

// LoadGenConfig - параметры cmd/loadgen.
type LoadGenConfig struct {
	Count       int
	Interval    time.Duration
	UserIDs     []string
	RetailerIDs []int64
	ProductIDs  []int64
}

// LoadConfig читает настройки из переменных окружения и, если задан CONFIG_FILE, из файла.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("чтение файла конфигурации %s: %w", file, err)
		}
	}

	cfg := &Config{
		HTTP: HTTPConfig{Addr: v.GetString("HTTP_ADDR")},
		DB: DBConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			Path:     v.GetString("DB_PATH"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			CartTTL:  v.GetDuration("CART_TTL"),
		},
		Cache: CacheConfig{
			CatalogTTL:      v.GetDuration("CATALOG_CACHE_TTL"),
			CleanupInterval: v.GetDuration("CACHE_CLEANUP_INTERVAL"),
		},
		KafkaConfig: KafkaConfig{
			Enabled:     v.GetBool("KAFKA_ENABLED"),
			Brokers:     splitList(v.GetString("KAFKA_BROKER")),
			Topic:       v.GetString("KAFKA_TOPIC"),
			IntakeTopic: v.GetString("KAFKA_INTAKE_TOPIC"),
			Group:       v.GetString("KAFKA_GROUP"),
		},
		Trace: TraceConfig{
			Enabled:     v.GetBool("OTEL_ENABLED"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
		},
	}

	var err error
	cfg.LoadGen = LoadGenConfig{
		Count:    v.GetInt("LOADGEN_COUNT"),
		Interval: v.GetDuration("LOADGEN_INTERVAL"),
		UserIDs:  splitList(v.GetString("LOADGEN_USERS")),
	}
	if cfg.LoadGen.RetailerIDs, err = splitIDs(v.GetString("LOADGEN_RETAILERS")); err != nil {
		return nil, fmt.Errorf("LOADGEN_RETAILERS: %w", err)
	}
	if cfg.LoadGen.ProductIDs, err = splitIDs(v.GetString("LOADGEN_PRODUCTS")); err != nil {
		return nil, fmt.Errorf("LOADGEN_PRODUCTS: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "pass")
	v.SetDefault("DB_NAME", "field_sales")
	v.SetDefault("DB_PATH", "field-sales.db")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CART_TTL", 72*time.Hour)

	v.SetDefault("CATALOG_CACHE_TTL", time.Minute)
	v.SetDefault("CACHE_CLEANUP_INTERVAL", 30*time.Second)

	v.SetDefault("KAFKA_ENABLED", true)
	v.SetDefault("KAFKA_BROKER", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", "field-sales.submissions")
	v.SetDefault("KAFKA_INTAKE_TOPIC", "field-sales.intake")
	v.SetDefault("KAFKA_GROUP", "field-sales")

	v.SetDefault("OTEL_ENABLED", true)
	v.SetDefault("OTEL_SERVICE_NAME", "field-sales-service")

	v.SetDefault("LOADGEN_COUNT", 10)
	v.SetDefault("LOADGEN_INTERVAL", 500*time.Millisecond)
	v.SetDefault("LOADGEN_USERS", "SR-1")
	v.SetDefault("LOADGEN_RETAILERS", "1")
	v.SetDefault("LOADGEN_PRODUCTS", "1")
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("неизвестный DB_DRIVER %q: ожидается postgres или sqlite", c.DB.Driver)
	}
	if c.KafkaConfig.Enabled && len(c.KafkaConfig.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKER не задан")
	}
	if c.Cache.CleanupInterval <= 0 {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL должен быть больше нуля")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitIDs(s string) ([]int64, error) {
	parts := splitList(s)
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("неверный id %q: %w", p, err)
		}
		out = append(out, id)
	}
	return out, nil
}
