package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Catalog CatalogConfig
	Billing BillingConfig
	CORS    CORSConfig
	Static  StaticConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TAAZA_APP_ENV" default:"dev"`
	Port         string `envconfig:"TAAZA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TAAZA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TAAZA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SessionConfig controls the in-memory session lifecycle windows.
type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"TAAZA_SESSION_IDLE_TTL" default:"30m"`
	CheckoutGrace time.Duration `envconfig:"TAAZA_SESSION_CHECKOUT_GRACE" default:"30s"`
}

// CatalogConfig points at the upstream category/item catalog API.
type CatalogConfig struct {
	CategoryURL  string        `envconfig:"TAAZA_CATEGORY_API_URL" default:"https://pos-backend-nine-pied.vercel.app/api/categories/list"`
	ItemsBaseURL string        `envconfig:"TAAZA_ITEMS_API_BASE" default:"https://pos-backend-nine-pied.vercel.app/api/item-details/category"`
	Timeout      time.Duration `envconfig:"TAAZA_CATALOG_TIMEOUT" default:"10s"`
	ItemsTimeout time.Duration `envconfig:"TAAZA_ITEMS_TIMEOUT" default:"15s"`
}

// BillingConfig points at the upstream order booking API.
type BillingConfig struct {
	URL       string        `envconfig:"TAAZA_BILL_API_URL" default:"https://pos-backend-nine-pied.vercel.app/api/bookings"`
	AuthToken string        `envconfig:"TAAZA_BILL_API_AUTH"`
	Timeout   time.Duration `envconfig:"TAAZA_BILLING_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	Origins []string `envconfig:"TAAZA_CORS_ORIGINS" default:"*"`
}

type StaticConfig struct {
	Dir string `envconfig:"TAAZA_STATIC_DIR" default:"static"`
}
