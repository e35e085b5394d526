package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Ledger    LedgerConfig
	Scheduler SchedulerConfig
	I18n      I18nConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type DatabaseConfig struct {
	Driver   string
	Postgres PostgresConfig
	// SQLitePath is used when Driver is "sqlite".
	SQLitePath string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// RedisConfig with an empty Addr disables the stock lock and the material
// cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig with no brokers disables the requisition listener.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type LedgerConfig struct {
	LockEnabled bool
	LockTTL     time.Duration
}

type SchedulerConfig struct {
	AlertSchedule   string
	AlertWebhookURL string
	WebhookTimeout  time.Duration
}

type I18nConfig struct {
	DefaultLang string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8090"),
			HTTPPort: getEnv("HTTP_PORT", ":8091"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "postgres"),
			Postgres: PostgresConfig{
				Host:            getEnv("POSTGRES_HOST", "localhost"),
				Port:            getEnv("POSTGRES_PORT", "5433"),
				User:            getEnv("POSTGRES_USER", "omnipos"),
				Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
				DBName:          getEnv("POSTGRES_DB", "omnipos_ledger"),
				SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
				MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
				MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
				ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
			},
			SQLitePath: getEnv("SQLITE_PATH", "ledger.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC_REQUISITIONS", "requisitions.events"),
			GroupID: getEnv("KAFKA_GROUP_LEDGER", "ledger"),
		},
		Ledger: LedgerConfig{
			LockEnabled: getEnvBool("LEDGER_LOCK_ENABLED", false),
			LockTTL:     time.Duration(getEnvInt("LEDGER_LOCK_TTL_SECONDS", 5)) * time.Second,
		},
		Scheduler: SchedulerConfig{
			AlertSchedule:   getEnv("ALERT_CRON_SCHEDULE", "@every 1h"),
			AlertWebhookURL: getEnv("ALERT_WEBHOOK_URL", ""),
			WebhookTimeout:  time.Duration(getEnvInt("ALERT_WEBHOOK_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		I18n: I18nConfig{
			DefaultLang: getEnv("I18N_DEFAULT_LANG", "en"),
		},
	}
}

// Validate reports every setting that would stop the service from starting.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.GRPCPort == "" {
		errs = append(errs, errors.New("GRPC_PORT is required"))
	}
	if c.Server.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Postgres.Host == "" || c.Database.Postgres.DBName == "" {
			errs = append(errs, errors.New("POSTGRES_HOST and POSTGRES_DB are required for the postgres driver"))
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not one of postgres, sqlite", c.Database.Driver))
	}

	if c.Ledger.LockEnabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("LEDGER_LOCK_ENABLED requires REDIS_ADDR"))
	}
	if c.Ledger.LockTTL <= 0 {
		errs = append(errs, errors.New("LEDGER_LOCK_TTL_SECONDS must be positive"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("KAFKA_TOPIC_REQUISITIONS is required when KAFKA_BROKERS is set"))
	}
	if c.I18n.DefaultLang == "" {
		errs = append(errs, errors.New("I18N_DEFAULT_LANG is required"))
	}

	return errors.Join(errs...)
}

// Addr normalizes a port setting such as "8090" to ":8090".
func Addr(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvSlice splits a comma-separated value and drops empty entries.
func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
