package config

// EnvPrefix is passed to envconfig.Process; individual vars carry the full
// TAAZA_ prefix in their tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, for tests and docs.
const (
	EnvAppEnv        = "TAAZA_APP_ENV"
	EnvPort          = "TAAZA_APP_PORT"
	EnvLogLevel      = "TAAZA_LOG_LEVEL"
	EnvIdleTTL       = "TAAZA_SESSION_IDLE_TTL"
	EnvCheckoutGrace = "TAAZA_SESSION_CHECKOUT_GRACE"
	EnvCategoryURL   = "TAAZA_CATEGORY_API_URL"
	EnvItemsBaseURL  = "TAAZA_ITEMS_API_BASE"
	EnvBillURL       = "TAAZA_BILL_API_URL"
	EnvBillAuth      = "TAAZA_BILL_API_AUTH"
	EnvCORSOrigins   = "TAAZA_CORS_ORIGINS"
	EnvStaticDir     = "TAAZA_STATIC_DIR"
)
