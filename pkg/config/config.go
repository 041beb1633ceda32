package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "DARZI"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "DARZI_DB_DSN"
	EnvDBHost = "DARZI_DB_HOST"
	EnvDBUser = "DARZI_DB_USER"
	EnvDBName = "DARZI_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Dashboard    DashboardConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DARZI_APP_ENV" required:"true"`
	Port         string `envconfig:"DARZI_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DARZI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DARZI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DARZI_DB_DSN"`
	Driver string `envconfig:"DARZI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DARZI_DB_HOST"`
	LegacyPort     int    `envconfig:"DARZI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DARZI_DB_USER"`
	LegacyPassword string `envconfig:"DARZI_DB_PASSWORD"`
	LegacyName     string `envconfig:"DARZI_DB_NAME"`
	LegacySSLMode  string `envconfig:"DARZI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DARZI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DARZI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DARZI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DARZI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"DARZI_REDIS_URL" required:"true"`
	Password     string        `envconfig:"DARZI_REDIS_PASSWORD"`
	DB           int           `envconfig:"DARZI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DARZI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DARZI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DARZI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DARZI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DARZI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"DARZI_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"DARZI_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"DARZI_JWT_EXPIRATION_MINUTES" default:"60"`
}

// DashboardConfig tunes the dashboard aggregation surface.
type DashboardConfig struct {
	// Timezone anchors calendar-day boundaries for every range selector.
	Timezone string `envconfig:"DARZI_DASHBOARD_TIMEZONE" default:"UTC"`
}

// Location resolves the configured dashboard timezone, falling back to UTC.
func (d DashboardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DARZI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
