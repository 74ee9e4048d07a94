package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTP        HTTP
	Logger      Logger
	Postgres    Postgres
	Kafka       Kafka
	PaymentPage PaymentPage
	Dashboard   Dashboard
	Checkout    Checkout
	Poller      Poller
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	// Download jobs older than this are purged by the retention job.
	DownloadRetention time.Duration `env:"POSTGRES_DOWNLOAD_RETENTION" envDefault:"168h"`
}

type Kafka struct {
	Brokers     []string `env:"KAFKA_BROKERS"`
	StatusTopic string   `env:"KAFKA_PAYMENT_STATUS_TOPIC" envDefault:"payment.status.resolved"`
}

// PaymentPage is the external payment backend used by the checkout pages.
type PaymentPage struct {
	BaseURL           string        `env:"PAYMENT_PAGE_BASE_URL"`
	MerchantNameURL   string        `env:"PAYMENT_PAGE_MERCHANT_NAME_URL"`
	PaymentMethodsURL string        `env:"PAYMENT_PAGE_METHODS_URL"`
	PublicURL         string        `env:"PAYMENT_PAGE_PUBLIC_URL"` // Where the checkout pages are served, used for redirect URLs.
	Timeout           time.Duration `env:"PAYMENT_PAGE_TIMEOUT" envDefault:"10s"`
	RetryAttempts     int           `env:"PAYMENT_PAGE_RETRY_ATTEMPTS" envDefault:"2"`
}

type Dashboard struct {
	APIURL  string        `env:"DASHBOARD_API_URL"`
	Timeout time.Duration `env:"DASHBOARD_TIMEOUT" envDefault:"10s"`
}

type Checkout struct {
	PayableThreshold   decimal.Decimal `env:"CHECKOUT_PAYABLE_THRESHOLD" envDefault:"99"`
	ProcessingFee      decimal.Decimal `env:"CHECKOUT_PROCESSING_FEE" envDefault:"10"`
	SystemFee          decimal.Decimal `env:"CHECKOUT_SYSTEM_FEE" envDefault:"10"`
	FallbackCardMethod string          `env:"CHECKOUT_FALLBACK_CARD_METHOD_CODE" envDefault:""`
	FallbackCardProv   string          `env:"CHECKOUT_FALLBACK_CARD_PROVIDER_CODE" envDefault:""`
	PaymentRateLimit   float64         `env:"CHECKOUT_PAYMENT_RATE_LIMIT" envDefault:"2"`
	PaymentRateBurst   int             `env:"CHECKOUT_PAYMENT_RATE_BURST" envDefault:"5"`
}

type Poller struct {
	Interval     time.Duration `env:"POLLER_INTERVAL" envDefault:"30s"`
	CycleTimeout time.Duration `env:"POLLER_CYCLE_TIMEOUT" envDefault:"15s"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
