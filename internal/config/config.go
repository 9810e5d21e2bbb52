package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	Email    EmailConfig    `toml:"email"`
	Frontend FrontendConfig `toml:"frontend"`
	Redis    RedisConfig    `toml:"redis"`
	Admin    AdminConfig    `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig часы работы и правила расписания
type BusinessConfig struct {
	Name                string   `toml:"name"`
	Address             string   `toml:"address"`
	Timezone            string   `toml:"timezone"`
	OpeningHour         int      `toml:"opening_hour"`
	ClosingHour         int      `toml:"closing_hour"`
	SlotDurationMinutes int      `toml:"slot_duration_minutes"`
	LeadTimeMinutes     int      `toml:"lead_time_minutes"`
	ClosedDays          []string `toml:"closed_days"`
	MaxRangeDays        int      `toml:"max_range_days"`
}

// Location загружает часовой пояс бизнеса
func (b BusinessConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// Weekdays преобразует названия выходных дней в time.Weekday
func (b BusinessConfig) Weekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(b.ClosedDays))
	for _, name := range b.ClosedDays {
		day, ok := weekdayByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type EmailConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	Username    string   `toml:"username"`
	Password    string   `toml:"password"`
	FromName    string   `toml:"from_name"`
	FromAddress string   `toml:"from_address"`
	StaffEmails []string `toml:"staff_emails"`
	Timeout     int      `toml:"timeout"`
}

type FrontendConfig struct {
	URL            string   `toml:"url"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// Load читает TOML-файл, подгружает .env (если есть) и применяет переопределения
// секретов из переменных окружения
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "curbside-pickup",
		},
		Business: BusinessConfig{
			Timezone:            "America/Toronto",
			OpeningHour:         11,
			ClosingHour:         17,
			SlotDurationMinutes: 15,
			LeadTimeMinutes:     60,
			ClosedDays:          []string{"Sunday"},
			MaxRangeDays:        31,
		},
		Email: EmailConfig{
			Port:    587,
			Timeout: 10,
		},
		Redis: RedisConfig{TTLSeconds: 60},
	}
}

var envOverrides = []struct {
	name  string
	apply func(c *Config, v string)
}{
	{"DB_PASSWORD", func(c *Config, v string) { c.Database.Password = v }},
	{"EMAIL_USERNAME", func(c *Config, v string) { c.Email.Username = v }},
	{"EMAIL_PASSWORD", func(c *Config, v string) { c.Email.Password = v }},
	{"ADMIN_API_KEY", func(c *Config, v string) { c.Admin.APIKey = v }},
	{"REDIS_PASSWORD", func(c *Config, v string) { c.Redis.Password = v }},
}

func (c *Config) applyEnv() {
	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.name); ok {
			o.apply(c, v)
		}
	}
}

// Validate проверяет бизнес-настройки расписания
func (c *Config) Validate() error {
	b := c.Business

	if _, err := b.Location(); err != nil {
		return fmt.Errorf("%w: business.timezone %q: %v", ErrInvalidConfig, b.Timezone, err)
	}
	if b.OpeningHour < 0 || b.OpeningHour >= b.ClosingHour || b.ClosingHour > 23 {
		return fmt.Errorf("%w: business hours must satisfy 0 <= opening_hour < closing_hour <= 23, got %d..%d",
			ErrInvalidConfig, b.OpeningHour, b.ClosingHour)
	}
	if b.SlotDurationMinutes <= 0 || 60%b.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: business.slot_duration_minutes must be a positive divisor of 60, got %d",
			ErrInvalidConfig, b.SlotDurationMinutes)
	}
	if b.LeadTimeMinutes < 0 {
		return fmt.Errorf("%w: business.lead_time_minutes must be >= 0", ErrInvalidConfig)
	}
	if b.MaxRangeDays <= 0 {
		return fmt.Errorf("%w: business.max_range_days must be > 0", ErrInvalidConfig)
	}
	if _, err := b.Weekdays(); err != nil {
		return fmt.Errorf("%w: business.closed_days: %v", ErrInvalidConfig, err)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	return nil
}
