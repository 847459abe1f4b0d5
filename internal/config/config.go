package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ibeloyar/loangateway/internal/lender"
	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/shopspring/decimal"
)

const (
	DefaultRunAddress     = ":8080"
	DefaultDatabaseURI    = ""
	DefaultRedisAddress   = "localhost:6379"
	DefaultLogLevel       = "info"
	DefaultStoreBaseURL   = "http://localhost:8080"
	DefaultTitle          = "Pay monthly"
	DefaultDescription    = "Spread the cost of your purchase with a loan from Lending Works."
	DefaultSecretKey      = "secret"
	DefaultNonceLifetime  = 24 * time.Hour
	DefaultTokenLifetime  = 3 * time.Hour
	DefaultLenderTimeout  = 5 * time.Second
	DefaultLenderRetries  = 0
	DefaultInboundRPS     = 5
	DefaultInboundBurst   = 10
	DefaultMinOrderTotal  = 50
	DefaultMaxOrderTotal  = 25000
	DefaultTestMode       = true
	DefaultGatewayEnabled = false
)

type Config struct {
	RunAddress   string `env:"RUN_ADDRESS"`
	DatabaseURI  string `env:"DATABASE_URI"`
	RedisAddress string `env:"REDIS_ADDRESS"`
	LogLevel     string `env:"LOG_LEVEL"`
	StoreBaseURL string `env:"STORE_BASE_URL"`

	// настройки платежного шлюза
	APIKey            string          `env:"API_KEY"`
	TestMode          bool            `env:"TEST_MODE"`
	Enabled           bool            `env:"ENABLED"`
	Title             string          `env:"TITLE"`
	Description       string          `env:"DESCRIPTION"`
	ManualFulfillment bool            `env:"MANUAL_FULFILLMENT"`
	MinTotal          decimal.Decimal `env:"MIN_TOTAL"`
	MaxTotal          decimal.Decimal `env:"MAX_TOTAL"`

	SecretKey          string        `env:"SECRET_KEY"`
	NonceLifetime      time.Duration `env:"NONCE_LIFETIME"`
	AdminLogin         string        `env:"ADMIN_LOGIN"`
	AdminPasswordHash  string        `env:"ADMIN_PASSWORD_HASH"`
	AdminTokenLifetime time.Duration `env:"ADMIN_TOKEN_LIFETIME"`

	LenderTimeout    time.Duration `env:"LENDER_TIMEOUT"`
	LenderMaxRetries int           `env:"LENDER_MAX_RETRIES"`
	InboundRPS       float64       `env:"INBOUND_RPS"`
	InboundBurst     int           `env:"INBOUND_BURST"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.RedisAddress, "c", DefaultRedisAddress, "Redis address host:port for shopper sessions")
	flag.StringVar(&config.LogLevel, "l", DefaultLogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&config.StoreBaseURL, "u", DefaultStoreBaseURL, "Public store URL used in redirects")

	flag.StringVar(&config.APIKey, "k", "", "Lender retail API key")
	flag.BoolVar(&config.TestMode, "t", DefaultTestMode, "Use the lender sandbox")
	flag.BoolVar(&config.Enabled, "e", DefaultGatewayEnabled, "Offer the gateway at checkout")
	flag.StringVar(&config.Title, "title", DefaultTitle, "Gateway title shown at checkout")
	flag.StringVar(&config.Description, "description", DefaultDescription, "Gateway description shown at checkout")
	flag.BoolVar(&config.ManualFulfillment, "f", false, "Fulfill loans from the admin instead of on order completion")
	flag.TextVar(&config.MinTotal, "min", decimal.NewFromInt(DefaultMinOrderTotal), "Minimum order total")
	flag.TextVar(&config.MaxTotal, "max", decimal.NewFromInt(DefaultMaxOrderTotal), "Maximum order total")

	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for nonces and admin tokens")
	flag.DurationVar(&config.NonceLifetime, "n", DefaultNonceLifetime, "Pay page nonce lifetime")
	flag.StringVar(&config.AdminLogin, "admin", "", "Admin login, empty disables the admin API")
	flag.StringVar(&config.AdminPasswordHash, "admin-hash", "", "Admin password bcrypt hash")
	flag.DurationVar(&config.AdminTokenLifetime, "h", DefaultTokenLifetime, "Admin token lifetime (e.g. 1h, 30m, 2h30m)")

	flag.DurationVar(&config.LenderTimeout, "lender-timeout", DefaultLenderTimeout, "Timeout of one lender API call")
	flag.IntVar(&config.LenderMaxRetries, "lender-retries", DefaultLenderRetries, "Retries of a failed lender API call")
	flag.Float64Var(&config.InboundRPS, "rps", DefaultInboundRPS, "Lender callback requests per second per IP")
	flag.IntVar(&config.InboundBurst, "burst", DefaultInboundBurst, "Lender callback burst per IP")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// Gateway - настройки шлюза в том виде, в котором их сохраняет магазин
func (c Config) Gateway() model.GatewaySettings {
	return model.GatewaySettings{
		Enabled:           c.Enabled,
		Title:             c.Title,
		Description:       c.Description,
		APIKey:            c.APIKey,
		TestMode:          c.TestMode,
		ManualFulfillment: c.ManualFulfillment,
		MinTotal:          c.MinTotal,
		MaxTotal:          c.MaxTotal,
	}
}

func (c Config) LenderBaseURL() string {
	return lender.BaseURL(c.TestMode)
}

func (c Config) CheckoutScriptURL() string {
	return lender.CheckoutScriptURL(c.TestMode)
}

// SecureCookies - cookie сессии только по https, если магазин открыт по https
func (c Config) SecureCookies() bool {
	return strings.HasPrefix(c.StoreBaseURL, "https://")
}
