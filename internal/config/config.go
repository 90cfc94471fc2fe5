package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL   = "15m"
	defaultPaymentTimeout = "20s"
	defaultListenAddr     = ":8080"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultPaytrBaseURL   = "https://www.paytr.com/odeme/api/get-token"
	defaultPaytrTestMode  = "1"
)

type RuntimeConfig struct {
	AppEnv         string
	ListenAddr     string
	DatabaseURL    string
	JWTSecret      string
	JWTAccessTTL   time.Duration
	PaymentTimeout time.Duration

	PaytrMerchantID   string
	PaytrMerchantKey  string
	PaytrMerchantSalt string
	PaytrBaseURL      string
	PaytrCallbackURL  string
	PaytrOKURL        string
	PaytrFailURL      string
	PaytrTestMode     bool
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.PaymentTimeout, err = parseDurationEnv("PAYMENT_TIMEOUT", defaultPaymentTimeout)
	if err != nil {
		return nil, err
	}

	cfg.PaytrMerchantID = strings.TrimSpace(os.Getenv("PAYTR_MERCHANT_ID"))
	cfg.PaytrMerchantKey = strings.TrimSpace(os.Getenv("PAYTR_MERCHANT_KEY"))
	cfg.PaytrMerchantSalt = strings.TrimSpace(os.Getenv("PAYTR_MERCHANT_SALT"))
	cfg.PaytrBaseURL = strings.TrimSpace(getEnv("PAYTR_BASE_URL", defaultPaytrBaseURL))
	cfg.PaytrCallbackURL = strings.TrimSpace(os.Getenv("PAYTR_CALLBACK_URL"))
	cfg.PaytrOKURL = strings.TrimSpace(os.Getenv("PAYTR_OK_URL"))
	cfg.PaytrFailURL = strings.TrimSpace(os.Getenv("PAYTR_FAIL_URL"))
	cfg.PaytrTestMode = parseBoolEnv("PAYTR_TEST_MODE", defaultPaytrTestMode)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("runtime config: env=%s listen=%s payment_timeout=%s paytr_test=%t",
		cfg.AppEnv, cfg.ListenAddr, cfg.PaymentTimeout, cfg.PaytrTestMode)

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.PaymentTimeout <= 0 {
		return fmt.Errorf("PAYMENT_TIMEOUT must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.PaytrMerchantID == "" || cfg.PaytrMerchantKey == "" || cfg.PaytrMerchantSalt == "" {
			return fmt.Errorf("in prod/release PAYTR_MERCHANT_ID, PAYTR_MERCHANT_KEY and PAYTR_MERCHANT_SALT must be set")
		}
		if cfg.PaytrTestMode {
			return fmt.Errorf("in prod/release PAYTR_TEST_MODE must be false")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
