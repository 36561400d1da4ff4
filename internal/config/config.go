package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Драйверы уведомлений
const (
	NotifierLog   = "log"
	NotifierKafka = "kafka"
	NotifierNone  = "none"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Persistence   PersistenceConfig   `toml:"persistence"`
	Reminders     RemindersConfig     `toml:"reminders"`
	Notifications NotificationsConfig `toml:"notifications"`
	Advisor       AdvisorConfig       `toml:"advisor"`
	Admin         AdminConfig         `toml:"admin"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища коллекций
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig параметры PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig параметры Redis
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// PersistenceConfig повторы записи снимков
type PersistenceConfig struct {
	MaxRetries        uint `toml:"max_retries"`
	InitialIntervalMs int  `toml:"initial_interval_ms"`
	MaxIntervalMs     int  `toml:"max_interval_ms"`
}

// RemindersConfig параметры планировщика напоминаний
type RemindersConfig struct {
	Enabled            bool   `toml:"enabled"`
	PollInterval       int    `toml:"poll_interval"` // секунды
	WindowMinutes      int    `toml:"window_minutes"`
	MissedGraceMinutes int    `toml:"missed_grace_minutes"`
	Timezone           string `toml:"timezone"` // пусто - локальная зона
}

// Location зона, в которой интерпретируются дата и время записей
func (c RemindersConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// NotificationsConfig параметры канала уведомлений
type NotificationsConfig struct {
	Driver      string `toml:"driver"`
	Brokers     string `toml:"brokers"` // через запятую
	Topic       string `toml:"topic"`
	DialTimeout int    `toml:"dial_timeout"` // секунды
}

// AdvisorConfig параметры генеративного ассистента
type AdvisorConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"` // секунды
}

// AdminConfig заглушка доступа к административным маршрутам
type AdminConfig struct {
	Token string `toml:"token"`
}

// Load читает конфигурацию из TOML файла и переменных окружения
// Файл .env, если он есть, загружается до чтения переменных
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon_service",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "salon:",
		},
		Persistence: PersistenceConfig{
			MaxRetries:        3,
			InitialIntervalMs: 100,
			MaxIntervalMs:     2000,
		},
		Reminders: RemindersConfig{
			Enabled:       true,
			PollInterval:  30,
			WindowMinutes: 60,
		},
		Notifications: NotificationsConfig{
			Driver:      NotifierLog,
			Topic:       "salon.reminders",
			DialTimeout: 3,
		},
		Advisor: AdvisorConfig{
			URL:     "https://generativelanguage.googleapis.com",
			Model:   "gemini-3-flash-preview",
			Timeout: 20,
		},
	}
}

// applyEnv переопределяет секреты из окружения
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv("ADVISOR_API_KEY"); ok {
		c.Advisor.APIKey = v
	}
	if v, ok := os.LookupEnv("ADMIN_TOKEN"); ok {
		c.Admin.Token = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("unknown storage.driver: %q", c.Storage.Driver)
	}

	switch c.Notifications.Driver {
	case NotifierLog, NotifierNone:
	case NotifierKafka:
		if c.Notifications.Brokers == "" || c.Notifications.Topic == "" {
			return errors.New("notifications.brokers and notifications.topic are required for kafka driver")
		}
	default:
		return fmt.Errorf("unknown notifications.driver: %q", c.Notifications.Driver)
	}

	if c.Reminders.PollInterval <= 0 {
		return fmt.Errorf("reminders.poll_interval must be positive, got %d", c.Reminders.PollInterval)
	}
	if c.Reminders.WindowMinutes <= 0 {
		return fmt.Errorf("reminders.window_minutes must be positive, got %d", c.Reminders.WindowMinutes)
	}
	if c.Reminders.MissedGraceMinutes < 0 {
		return fmt.Errorf("reminders.missed_grace_minutes must not be negative, got %d", c.Reminders.MissedGraceMinutes)
	}
	if _, err := c.Reminders.Location(); err != nil {
		return fmt.Errorf("invalid reminders.timezone: %w", err)
	}

	if c.Persistence.MaxRetries == 0 {
		return errors.New("persistence.max_retries must be positive")
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics.path is required when metrics are enabled")
	}

	return nil
}
