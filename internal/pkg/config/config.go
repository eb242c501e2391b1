package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Schedule  ScheduleConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER"`
	Password   string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"coworking"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone   string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"coworking.db"`
	// AutoMigrate applies the bundled schema on startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Limit,X-RateLimit-Remaining,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:""`
}

type ScheduleConfig struct {
	// TimeZone decides which civil day is "today" for the past-date check.
	TimeZone     string `envconfig:"SCHEDULE_TIMEZONE" default:"America/Sao_Paulo"`
	FullPlanOnly bool   `envconfig:"SCHEDULE_FULL_PLAN_ONLY" default:"false"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	// Capacity is the bucket size; RefillPerSec tokens come back each second.
	Capacity     int     `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RefillPerSec float64 `envconfig:"RATE_LIMIT_REFILL_PER_SEC" default:"0.5"`
}

type BrokerConfig struct {
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_NOTIFICATION_QUEUE" default:"avisos"`
	// PublishTimeout caps each notification publish, dial included.
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"2s"`
}

type CacheConfig struct {
	Size int           `envconfig:"CACHE_SIZE" default:"256"`
	TTL  time.Duration `envconfig:"CACHE_TTL" default:"1m"`
}

var (
	ErrUnknownDriver      = errors.New("DB_DRIVER must be postgres or sqlite")
	ErrMissingDBUser      = errors.New("DB_USER is required for the postgres driver")
	ErrMissingSQLitePath  = errors.New("DB_SQLITE_PATH is required for the sqlite driver")
	ErrInvalidScheduleTZ  = errors.New("SCHEDULE_TIMEZONE is not a known location")
	ErrInvalidRateCeiling = errors.New("RATE_LIMIT_CAPACITY and RATE_LIMIT_REFILL_PER_SEC must be positive")
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.User == "" {
			return ErrMissingDBUser
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return ErrMissingSQLitePath
		}
	default:
		return ErrUnknownDriver
	}
	return nil
}

// Location falls back to UTC for an empty zone name.
func (c *ScheduleConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScheduleTZ, c.TimeZone)
	}
	return loc, nil
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *BrokerConfig) Enabled() bool {
	return c.URL != ""
}

func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Schedule.Location(); err != nil {
		return Config{}, err
	}
	if cfg.Redis.Enabled() && (cfg.RateLimit.Capacity <= 0 || cfg.RateLimit.RefillPerSec <= 0) {
		return Config{}, ErrInvalidRateCeiling
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:     DriverPostgres,
			Host:       "localhost",
			Port:       "15433", // Test DB port
			User:       "test",
			Password:   "test",
			DBName:     "test_db",
			SSLMode:    "disable",
			TimeZone:   "America/Sao_Paulo",
			SQLitePath: ":memory:",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-testing-only",
			Duration: "1h",
		},
		Schedule: ScheduleConfig{
			TimeZone: "America/Sao_Paulo",
		},
		RateLimit: RateLimitConfig{
			Capacity:     20,
			RefillPerSec: 0.5,
		},
		Broker: BrokerConfig{
			Queue:          "avisos",
			PublishTimeout: 2 * time.Second,
		},
		Cache: CacheConfig{
			Size: 64,
			TTL:  time.Minute,
		},
	}
}
