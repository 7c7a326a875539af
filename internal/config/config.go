package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Holds    HoldsConfig    `toml:"holds"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN собирает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто = stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HoldsConfig настройки временных hold'ов слотов
type HoldsConfig struct {
	TTLMinutes        int `toml:"ttl_minutes"`
	SweepIntervalSecs int `toml:"sweep_interval_seconds"`
}

// CalendarConfig настройки интеграции с Google Calendar
type CalendarConfig struct {
	Enabled        bool    `toml:"enabled"`
	CalendarID     string  `toml:"calendar_id"`
	AccessToken    string  `toml:"access_token"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "reball-booking-service"
	}
	if cfg.Holds.TTLMinutes == 0 {
		cfg.Holds.TTLMinutes = 15
	}
	if cfg.Holds.SweepIntervalSecs == 0 {
		cfg.Holds.SweepIntervalSecs = 60
	}
	if cfg.Calendar.RateLimitRPS == 0 {
		cfg.Calendar.RateLimitRPS = 5
	}
	if cfg.Calendar.RateLimitBurst == 0 {
		cfg.Calendar.RateLimitBurst = 10
	}
}

// validate проверяет обязательные поля
func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Calendar.Enabled && cfg.Calendar.CalendarID == "" {
		return fmt.Errorf("config: calendar.calendar_id is required when calendar is enabled")
	}
	if cfg.Calendar.Enabled && cfg.Calendar.AccessToken == "" {
		return fmt.Errorf("config: calendar.access_token is required when calendar is enabled")
	}
	return nil
}
