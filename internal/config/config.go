package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Загрузка конфигурации: .env (если есть) -> config.yaml -> переменные окружения

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Postgres       PostgresConfig       `yaml:"postgres"`
	Telegram       TelegramConfig       `yaml:"telegram"`
	ScheduleSource ScheduleSourceConfig `yaml:"schedule_source"`
	Scheduler      SchedulerConfig      `yaml:"scheduler"`
	Power          PowerConfig          `yaml:"power"`
	Wizard         WizardConfig         `yaml:"wizard"`
	Logger         LoggerConfig         `yaml:"logger"`
}

type ServerConfig struct {
	Enabled         bool          `yaml:"enabled" env:"HTTP_ENABLED" env-default:"true"`
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"voltyk"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
	Migrate         bool          `yaml:"migrate" env:"POSTGRES_MIGRATE" env-default:"true"`
}

// DSN - строка подключения в формате key=value
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type TelegramConfig struct {
	Token       string        `yaml:"token" env:"BOT_TOKEN"`
	AdminIDs    []string      `yaml:"admin_ids" env:"ADMIN_IDS" env-separator:","`
	OwnerID     string        `yaml:"owner_id" env:"OWNER_ID"`
	PollTimeout time.Duration `yaml:"poll_timeout" env-default:"10s"`
	// MenuDelay - пауза перед показом главного меню после успешной настройки
	MenuDelay      time.Duration `yaml:"menu_delay" env:"MENU_DELAY" env-default:"4s"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"5s"`
}

type ScheduleSourceConfig struct {
	BaseURL   string        `yaml:"base_url" env:"SCHEDULE_BASE_URL" env-default:"https://raw.githubusercontent.com/Baskerville42/outage-data-ua/main/data"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env-default:"voltyk-bot/1.0"`
	Timezone  string        `yaml:"timezone" env:"TZ_NAME" env-default:"Europe/Kyiv"`
}

// Location - часовой пояс графиков
func (c ScheduleSourceConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type SchedulerConfig struct {
	ScheduleEnabled bool `yaml:"schedule_enabled" env-default:"true"`
	PowerEnabled    bool `yaml:"power_enabled" env-default:"true"`
	// интервалы по умолчанию; актуальные значения берутся из настроек в БД
	ScheduleInterval time.Duration `yaml:"schedule_interval" env:"SCHEDULE_CHECK_INTERVAL" env-default:"60s"`
	PowerInterval    time.Duration `yaml:"power_interval" env:"POWER_CHECK_INTERVAL" env-default:"2s"`
}

type PowerConfig struct {
	ProbePort     int           `yaml:"probe_port" env-default:"80"`
	DialTimeout   time.Duration `yaml:"dial_timeout" env-default:"3s"`
	Confirmations int           `yaml:"confirmations" env-default:"3"`
	Workers       int           `yaml:"workers" env-default:"16"`
}

type WizardConfig struct {
	// SessionTTL - 0 отключает очистку незавершённых сессий
	SessionTTL    time.Duration `yaml:"session_ttl" env:"WIZARD_SESSION_TTL" env-default:"0s"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"5m"`
}

func LoadConfig() (*Config, error) {
	return Load(fetchConfigPath())
}

// Load читает конфигурацию из файла (если указан) и окружения
func Load(configPath string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate - проверка обязательных полей и диапазонов
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Telegram.Token) == "" {
		errs = append(errs, errors.New("telegram.token (BOT_TOKEN) is required"))
	}
	if _, err := c.ScheduleSource.Location(); err != nil {
		errs = append(errs, fmt.Errorf("schedule_source.timezone: %w", err))
	}
	if c.Scheduler.ScheduleInterval <= 0 {
		errs = append(errs, errors.New("scheduler.schedule_interval must be positive"))
	}
	if c.Scheduler.PowerInterval <= 0 {
		errs = append(errs, errors.New("scheduler.power_interval must be positive"))
	}
	if c.Power.Confirmations < 1 {
		errs = append(errs, errors.New("power.confirmations must be at least 1"))
	}
	if c.Telegram.MenuDelay < 0 {
		errs = append(errs, errors.New("telegram.menu_delay must not be negative"))
	}
	if c.Wizard.SessionTTL < 0 {
		errs = append(errs, errors.New("wizard.session_ttl must not be negative"))
	}
	return errors.Join(errs...)
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
