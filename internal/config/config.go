package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	App          AppConfig
	Storage      StorageConfig
	Redis        RedisConfig
	SQLite       SQLiteConfig
	Database     DatabaseConfig
	Notification NotificationConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type StorageConfig struct {
	Backend string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

type SQLiteConfig struct {
	Path string
}

type DatabaseConfig struct {
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string
	PoolMaxConns int32

	ConnectTimeout time.Duration
}

type NotificationConfig struct {
	TTL time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    opt("LOG_LEVEL"),
	}

	backend := strings.ToLower(opt("STORAGE_BACKEND"))
	switch backend {
	case "":
		backend = StorageMemory
	case StorageMemory, StorageRedis, StoragePostgres, StorageSQLite:
	default:
		invalid = append(invalid, "STORAGE_BACKEND")
	}
	cfg.Storage = StorageConfig{Backend: backend}

	cfg.Redis = RedisConfig{
		Host:      opt("REDIS_HOST"),
		Port:      opt("REDIS_PORT"),
		Password:  opt("REDIS_PASSWORD"),
		DB:        optInt("REDIS_DB", 0),
		KeyPrefix: opt("REDIS_KEY_PREFIX"),
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "jobportal:"
	}

	cfg.SQLite = SQLiteConfig{Path: opt("SQLITE_PATH")}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = "jobportal.sqlite"
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		ConnectTimeout: 5 * time.Second,
	}
	if cfg.Database.DBPort == "" {
		cfg.Database.DBPort = "5432"
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.Notification = NotificationConfig{
		TTL: time.Duration(optInt("NOTIFICATION_TTL", 3)) * time.Second,
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	if backend == StoragePostgres {
		if cfg.Database.DBHost == "" {
			missing = append(missing, "DB_HOST")
		}
		if cfg.Database.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if cfg.Database.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
		if len(missing) > 0 {
			return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
		}
	}

	return cfg, nil
}
