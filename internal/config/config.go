package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig параметры сетки слотов.
// Все времена - настенные часы одной фиксированной таймзоны салонов,
// рабочие часы не пересекают полночь.
type ScheduleConfig struct {
	OperatingStart      string `toml:"operating_start"`       // "09:00"
	OperatingEnd        string `toml:"operating_end"`         // "22:00"
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"` // шаг сетки
}

// CatalogConfig расположение файла каталога
type CatalogConfig struct {
	File string `toml:"file"`
}

// Load читает конфигурацию из TOML-файла и подставляет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "turki-booking-service"
	}
	if c.Schedule.OperatingStart == "" {
		c.Schedule.OperatingStart = domain.DefaultOperatingStart.String()
	}
	if c.Schedule.OperatingEnd == "" {
		c.Schedule.OperatingEnd = domain.DefaultOperatingEnd.String()
	}
	if c.Schedule.SlotIntervalMinutes == 0 {
		c.Schedule.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if c.Catalog.File == "" {
		c.Catalog.File = "catalog.toml"
	}
}

func (c *Config) validate() error {
	start, err := types.NewTimeStringFromString(c.Schedule.OperatingStart)
	if err != nil {
		return fmt.Errorf("config: invalid schedule.operating_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(c.Schedule.OperatingEnd)
	if err != nil {
		return fmt.Errorf("config: invalid schedule.operating_end: %w", err)
	}
	if start.IsAfter(end) {
		return fmt.Errorf("config: schedule.operating_start %s is after operating_end %s",
			c.Schedule.OperatingStart, c.Schedule.OperatingEnd)
	}
	if c.Schedule.SlotIntervalMinutes < 0 {
		return fmt.Errorf("config: schedule.slot_interval_minutes must be positive")
	}
	return nil
}

// OperatingStart возвращает начало рабочего дня как TimeString
func (c *Config) OperatingStart() types.TimeString {
	return types.TimeString(c.Schedule.OperatingStart)
}

// OperatingEnd возвращает конец рабочего дня как TimeString
func (c *Config) OperatingEnd() types.TimeString {
	return types.TimeString(c.Schedule.OperatingEnd)
}
