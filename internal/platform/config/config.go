package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures process-level configuration. Stores fall back to their
// in-memory implementations when DatabaseURL is empty, which keeps local
// development and unit tests free of external services.
type Config struct {
	Addr        string `env:"QUICKCLAIM_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	JWTSigningKey string `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	AdminToken    string `env:"ADMIN_TOKEN" envDefault:"dev-admin-token"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM" envDefault:"QuickClaim <noreply@quickclaim.app>"`

	BlobEndpoint  string `env:"BLOB_ENDPOINT"`
	BlobAccessKey string `env:"BLOB_ACCESS_KEY"`
	BlobSecretKey string `env:"BLOB_SECRET_KEY"`
	BlobBucket    string `env:"BLOB_BUCKET" envDefault:"quickclaim-documents"`
	BlobUseSSL    bool   `env:"BLOB_USE_SSL" envDefault:"false"`

	// EventBuffer bounds the notification channel; a full buffer drops
	// events rather than blocking the request path.
	EventBuffer int `env:"EVENT_BUFFER" envDefault:"256"`

	// CatalogCacheTTL bounds staleness of the redis-cached benefit catalog.
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	// DownloadURLTTL limits how long resolved document links stay valid.
	DownloadURLTTL time.Duration `env:"DOWNLOAD_URL_TTL" envDefault:"15m"`

	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// Load builds a Config from environment variables so main stays lean.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
