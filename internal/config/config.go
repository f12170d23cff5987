package config

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	LogLevel        string
	Addr            string
	DBType          string
	DBDSN           string
	DataDir         string
	AuthMode        string
	AuthServiceURL  string
	JWTSecret       string
	WaterGoalML     float64
	ShutdownTimeout time.Duration
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads .env (when present) and the environment once per process.
func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv(".env")
		cfg = FromEnv()
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func FromEnv() *Config {
	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Addr:            getEnv("HTTP_ADDR", ":8088"),
		DBType:          getEnv("STORAGE_BACKEND", "file"),
		DBDSN:           getEnv("POSTGRES_DSN", ""),
		DataDir:         getEnv("DATA_DIR", "data"),
		AuthMode:        getEnv("AUTH_MODE", "local"),
		AuthServiceURL:  getEnv("AUTH_SERVICE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		WaterGoalML:     getFloat("WATER_GOAL_ML", 2000),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Validate() error {
	if c.DBType != "file" && c.DBType != "postgres" {
		return errors.New("STORAGE_BACKEND must be one of: file, postgres")
	}
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && c.DataDir == "" {
		return errors.New("File storage requires DATA_DIR to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.AuthMode {
	case "local":
	case "remote":
		if c.AuthServiceURL == "" {
			return errors.New("AUTH_SERVICE_URL is required when AUTH_MODE=remote")
		}
	case "jwt":
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required when AUTH_MODE=jwt")
		}
	default:
		return errors.New("AUTH_MODE must be one of: local, remote, jwt")
	}
	if c.WaterGoalML <= 0 {
		return errors.New("WATER_GOAL_ML must be positive")
	}
	return nil
}

// loadDotEnv never overrides variables already set in the environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
