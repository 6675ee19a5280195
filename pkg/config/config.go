package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "STITCHLINE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "STITCHLINE_DB_DSN"
	EnvDBHost = "STITCHLINE_DB_HOST"
	EnvDBUser = "STITCHLINE_DB_USER"
	EnvDBName = "STITCHLINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"STITCHLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"STITCHLINE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STITCHLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STITCHLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STITCHLINE_DB_DSN"`
	Driver string `envconfig:"STITCHLINE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STITCHLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"STITCHLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STITCHLINE_DB_USER"`
	LegacyPassword string `envconfig:"STITCHLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"STITCHLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"STITCHLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STITCHLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STITCHLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STITCHLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STITCHLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STITCHLINE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STITCHLINE_REDIS_ADDR"`
	Password     string        `envconfig:"STITCHLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STITCHLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STITCHLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STITCHLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STITCHLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STITCHLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STITCHLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"STITCHLINE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"STITCHLINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"STITCHLINE_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"STITCHLINE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STITCHLINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STITCHLINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STITCHLINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STITCHLINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STITCHLINE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"STITCHLINE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"STITCHLINE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"STITCHLINE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"STITCHLINE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"STITCHLINE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"STITCHLINE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STITCHLINE_AUTO_MIGRATE" default:"false"`
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
