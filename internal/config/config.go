package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DBConfig struct {
	Driver          string // postgres | sqlite
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	Path            string // путь к файлу для sqlite
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

type HTTPConfig struct {
	Addr         string
	Mode         string // debug | release
	AllowOrigins []string
}

type Config struct {
	DB           DBConfig
	HTTP         HTTPConfig
	LogMode      string
	SeedDemoData bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Host:            getEnv("DB_HOST", "postgres"),
			User:            getEnv("DB_USER", "mediconsult"),
			Password:        getEnv("DB_PASSWORD", "mediconsult"),
			Name:            getEnv("DB_NAME", "mediconsult_db"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			Path:            getEnv("DB_PATH", "mediconsult.db"),
			Port:            getEnvInt("DB_PORT", 5432),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		HTTP: HTTPConfig{
			Addr:         getEnv("HTTP_ADDR", ":8080"),
			Mode:         getEnv("HTTP_MODE", "debug"),
			AllowOrigins: getEnvList("HTTP_ALLOW_ORIGINS", "*"),
		},
		LogMode:      getEnv("LOG_MODE", "dev"),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),
	}

	// минимальная валидация
	switch cfg.DB.Driver {
	case "postgres":
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
			return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case "sqlite":
		if cfg.DB.Path == "" {
			return nil, fmt.Errorf("invalid DB config: DB_PATH must not be empty for sqlite")
		}
	default:
		return nil, fmt.Errorf("invalid DB config: unsupported driver %q", cfg.DB.Driver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
