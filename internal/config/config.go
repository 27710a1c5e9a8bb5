package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

// HTTPCfg configures echo server
type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowOrigins    []string      `env:"HTTP_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:4200"`
	RateLimit       float64       `env:"HTTP_RATE_LIMIT" envDefault:"50"`
}

// GrpcCfg configures gRPC server
type GrpcCfg struct {
	Port int `env:"GRPC_PORT" envDefault:"3001"`
}

// StoreCfg selects cliente storage backend and its behavior
type StoreCfg struct {
	Backend             string `env:"CLIENTE_STORE" envDefault:"postgres"`
	SearchEmptyNotFound bool   `env:"CLIENTE_SEARCH_EMPTY_NOT_FOUND" envDefault:"true"`
}

// PostgresCfg configures pgx pool
type PostgresCfg struct {
	Host           string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port           int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User           string        `env:"POSTGRES_USER" envDefault:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database       string        `env:"POSTGRES_DB" envDefault:"clientes"`
	SslMode        string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn    int           `env:"POSTGRES_POOL_MAX_CONN" envDefault:"20"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
	Migrate        bool          `env:"POSTGRES_MIGRATE" envDefault:"true"`
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func dsnValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// DSN builds pgxpool connection string, values are quoted
func (c PostgresCfg) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		dsnValue(c.User), dsnValue(c.Password), dsnValue(c.Host), c.Port, dsnValue(c.Database), dsnValue(c.SslMode), c.PoolMaxConn,
	)
}

// MigrationURL builds golang-migrate pgx url
func (c PostgresCfg) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx",
		User:     url.UserPassword(c.User, c.Password),
		Host:     hostPort(c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SslMode}}.Encode(),
	}
	return u.String()
}

func hostPort(host string, port int) string {
	return host + ":" + strconv.Itoa(port)
}

// MongoCfg configures mongo client
type MongoCfg struct {
	URI            string        `env:"MONGO_URI" envDefault:""`
	Host           string        `env:"MONGO_HOST" envDefault:"localhost"`
	Port           int           `env:"MONGO_PORT" envDefault:"27017"`
	User           string        `env:"MONGO_USER" envDefault:""`
	Password       string        `env:"MONGO_PASSWORD" envDefault:""`
	Database       string        `env:"MONGO_DB" envDefault:"clientes"`
	MaxPoolSize    int           `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"5s"`
}

// ConnectionURI returns explicit uri or builds it from parts
func (c MongoCfg) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}

	u := url.URL{
		Scheme:   "mongodb",
		Host:     hostPort(c.Host, c.Port),
		Path:     "/",
		RawQuery: "maxPoolSize=" + strconv.Itoa(c.MaxPoolSize),
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}

// RedisCfg configures cliente cache, empty address disables cache
type RedisCfg struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:""`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	TimeToLive time.Duration `env:"REDIS_CACHE_TIME_TO_LIVE" envDefault:"10m"`
}

// Enabled reports whether cache must be used
func (c RedisCfg) Enabled() bool {
	return c.Addr != ""
}

// AuthCfg configures optional jwt verification, empty key file disables auth
type AuthCfg struct {
	PublicKeyFile string `env:"AUTH_JWT_PUBLIC_KEY_FILE" envDefault:""`
	Issuer        string `env:"AUTH_JWT_ISSUER" envDefault:"clientes-api"`
}

// Enabled reports whether requests must carry valid jwt
func (c AuthCfg) Enabled() bool {
	return c.PublicKeyFile != ""
}

// LogCfg configures logrus
type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Config is server configuration
type Config struct {
	HTTP     HTTPCfg
	Grpc     GrpcCfg
	Store    StoreCfg
	Postgres PostgresCfg
	Mongo    MongoCfg
	Redis    RedisCfg
	Auth     AuthCfg
	Log      LogCfg
}

// Build reads configuration from environment, values from .env file are loaded first if it exists
func Build() (Config, error) {
	var cfg Config

	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.Store.Backend {
	case StorePostgres, StoreMongo, StoreMemory:
	default:
		return cfg, fmt.Errorf("unknown store %q, expected one of %s, %s, %s", cfg.Store.Backend, StorePostgres, StoreMongo, StoreMemory)
	}

	if cfg.HTTP.RateLimit < 0 {
		return cfg, errors.New("rate limit must not be negative")
	}
	return cfg, nil
}

// LoadDotEnv loads .env file without overriding already set variables
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to access .env file - %w", err)
	}

	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env file - %w", err)
	}
	return nil
}
