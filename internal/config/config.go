package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Schedule   ScheduleConfig   `toml:"schedule"`
	Booking    BookingConfig    `toml:"booking"`
	Cache      CacheConfig      `toml:"cache"`
	Migrations MigrationsConfig `toml:"migrations"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
	Version         string `toml:"version"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL возвращает строку подключения в формате URL (для миграций)
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	JWTIssuer     string `toml:"jwt_issuer"`
	JWTAudience   string `toml:"jwt_audience"`
	JWTTTLMinutes int    `toml:"jwt_ttl_minutes"`
	BcryptCost    int    `toml:"bcrypt_cost"`
}

// JWTTTL возвращает срок жизни токена
func (c AuthConfig) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// DayConfig часы работы в день недели. Closed = true - выходной
type DayConfig struct {
	Closed      bool `toml:"closed"`
	OpeningHour int  `toml:"opening_hour"`
	ClosingHour int  `toml:"closing_hour"`
}

type ScheduleConfig struct {
	Timezone  string    `toml:"timezone"`
	Monday    DayConfig `toml:"monday"`
	Tuesday   DayConfig `toml:"tuesday"`
	Wednesday DayConfig `toml:"wednesday"`
	Thursday  DayConfig `toml:"thursday"`
	Friday    DayConfig `toml:"friday"`
	Saturday  DayConfig `toml:"saturday"`
	Sunday    DayConfig `toml:"sunday"`
}

type BookingConfig struct {
	// AllowedServices список названий услуг, которые можно передать при бронировании.
	// Пустой список отключает проверку
	AllowedServices []string `toml:"allowed_services"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL возвращает время жизни записей кеша
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MigrationsConfig struct {
	RunOnStart bool `toml:"run_on_start"`
}

// Load загружает конфигурацию из TOML файла и переопределяет секреты из окружения.
// Файл .env (если есть) подгружается в окружение перед чтением переменных
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// Отсутствие .env не ошибка
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        9000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Version:         "dev",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Auth: AuthConfig{
			JWTIssuer:     "salon-booking",
			JWTAudience:   "salon-booking",
			JWTTTLMinutes: 12 * 60,
			BcryptCost:    10,
		},
		Schedule: ScheduleConfig{
			Timezone:  domain.DefaultTimezone,
			Monday:    DayConfig{OpeningHour: domain.DefaultOpeningHour, ClosingHour: domain.DefaultClosingHour},
			Tuesday:   DayConfig{OpeningHour: domain.DefaultOpeningHour, ClosingHour: domain.DefaultClosingHour},
			Wednesday: DayConfig{OpeningHour: domain.DefaultOpeningHour, ClosingHour: domain.DefaultClosingHour},
			Thursday:  DayConfig{OpeningHour: domain.DefaultOpeningHour, ClosingHour: domain.DefaultClosingHour},
			Friday:    DayConfig{OpeningHour: domain.DefaultOpeningHour, ClosingHour: domain.DefaultClosingHour},
			Saturday:  DayConfig{OpeningHour: domain.DefaultOpeningHour, ClosingHour: domain.DefaultSaturdayClosingHour},
			Sunday:    DayConfig{Closed: true},
		},
		Cache: CacheConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 300,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT must be a number: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (set JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.JWTTTLMinutes <= 0 {
		return fmt.Errorf("%w: auth.jwt_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("%w: cache.ttl_seconds must be positive", ErrInvalidConfig)
	}

	if _, err := c.Schedule.OperatingHours(); err != nil {
		return err
	}
	return nil
}

// OperatingHours строит расписание салона.
// Требует ровно один выходной день и 0 <= opening < closing <= 24 для рабочих дней
func (s ScheduleConfig) OperatingHours() (*domain.OperatingHours, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule.timezone %q: %v", ErrInvalidConfig, s.Timezone, err)
	}

	days := map[time.Weekday]DayConfig{
		time.Monday:    s.Monday,
		time.Tuesday:   s.Tuesday,
		time.Wednesday: s.Wednesday,
		time.Thursday:  s.Thursday,
		time.Friday:    s.Friday,
		time.Saturday:  s.Saturday,
		time.Sunday:    s.Sunday,
	}

	week := make(map[time.Weekday]domain.DayHours, len(days))
	closed := 0
	for day, dc := range days {
		if dc.Closed {
			closed++
			week[day] = domain.ClosedDay()
			continue
		}
		week[day] = domain.OpenDay(dc.OpeningHour, dc.ClosingHour)
	}

	if closed != 1 {
		return nil, fmt.Errorf("%w: schedule must have exactly one closed day, got %d", ErrInvalidConfig, closed)
	}

	hours, err := domain.NewOperatingHours(loc, week)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return hours, nil
}
