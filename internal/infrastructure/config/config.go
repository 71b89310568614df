package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is the fallback signing key for non-production environments.
// Production refuses to start without an explicit JWT_SECRET.
const devJWTSecret = "dev-insecure-secret"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is both the token expiry and the auth cookie max-age.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=168h"`

	// PostExpireAfter flips active posts older than this to expired.
	// Zero disables the background sweep.
	PostExpireAfter time.Duration `env:"POST_EXPIRE_AFTER, default=720h"`

	// AuthRateWindow/AuthRateMax throttle register and login per client IP.
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW, default=1m"`
	AuthRateMax    int64         `env:"AUTH_RATE_MAX,    default=10"`

	Mongo MongoConfig
	Redis RedisConfig
	S3    S3Config
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lostfound"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type S3Config struct {
	Endpoint      string `env:"S3_ENDPOINT,        default=http://localhost:9000"`
	Region        string `env:"S3_REGION,          default=us-east-1"`
	Bucket        string `env:"S3_BUCKET,          default=lostfound-images"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
// The development JWT fallback is applied here; production without a secret
// is a hard error.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("config: JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return &cfg, nil
}
