package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	kafka_config "transferbook/pkg/kafka/config"
	"transferbook/pkg/locale"
	"transferbook/pkg/logger"
)

type Config struct {
	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int
	IdempotencyTTL time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	Timezone               string
	Location               *time.Location
	DefaultLanguage        string

	PlacesAPIKey            string
	PlacesBaseURL           string
	PlacesLanguage          string
	PlacesCountry           string
	PlacesDebounce          time.Duration
	PlacesMinQueryLength    int
	PlacesRequestsPerSecond float64
	PlacesBurst             int
	PlacesTimeout           time.Duration

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	PlacesCacheTTL time.Duration

	TelegramBotToken string
	TelegramChatID   string
	TelegramBaseURL  string

	Kafka *kafka_config.Config

	Log *logger.Logger
}

// Load reads the environment, exits on invalid configuration and logs the
// effective settings.
func Load(serviceName string) *Config {
	cfg := fromEnv(serviceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func fromEnv(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		SessionTTL:             getEnvDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionCleanupInterval: getEnvDuration(EnvSessionCleanupInterval, DefaultSessionCleanupInterval),
		Timezone:               getEnvStr(EnvTimezone, DefaultTimezone),
		DefaultLanguage:        getEnvStr(EnvDefaultLanguage, DefaultDefaultLanguage),

		PlacesAPIKey:            getEnvStr(EnvPlacesAPIKey, ""),
		PlacesBaseURL:           getEnvStr(EnvPlacesBaseURL, ""),
		PlacesLanguage:          getEnvStr(EnvPlacesLanguage, DefaultPlacesLanguage),
		PlacesCountry:           getEnvStr(EnvPlacesCountry, DefaultPlacesCountry),
		PlacesDebounce:          getEnvDuration(EnvPlacesDebounce, DefaultPlacesDebounce),
		PlacesMinQueryLength:    getEnvNum(EnvPlacesMinQueryLength, DefaultPlacesMinQueryLength),
		PlacesRequestsPerSecond: getEnvFloat(EnvPlacesRequestsPerSecond, DefaultPlacesRequestsPerSecond),
		PlacesBurst:             getEnvNum(EnvPlacesBurst, DefaultPlacesBurst),
		PlacesTimeout:           getEnvDuration(EnvPlacesTimeout, DefaultPlacesTimeout),

		RedisAddr:      getEnvStr(EnvRedisAddr, ""),
		RedisPassword:  getEnvStr(EnvRedisPassword, ""),
		RedisDB:        getEnvNum(EnvRedisDB, DefaultRedisDB),
		PlacesCacheTTL: getEnvDuration(EnvPlacesCacheTTL, DefaultPlacesCacheTTL),

		TelegramBotToken: getEnvStr(EnvTelegramBotToken, ""),
		TelegramChatID:   getEnvStr(EnvTelegramChatID, ""),
		TelegramBaseURL:  getEnvStr(EnvTelegramBaseURL, ""),

		Kafka: kafka_config.Load(),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    getEnvStr(EnvLogFormat, DefaultLogFormat),
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		cfg.Location = loc
	}
	return cfg
}

func (cfg *Config) PlacesEnabled() bool {
	return cfg.PlacesAPIKey != ""
}

func (cfg *Config) TelegramEnabled() bool {
	return cfg.TelegramBotToken != "" && cfg.TelegramChatID != ""
}

func (cfg *Config) CacheEnabled() bool {
	return cfg.RedisAddr != ""
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	} else if cfg.WriteTimeout <= cfg.RequestTimeout {
		errors = append(errors, fmt.Sprintf("WriteTimeout (%s) must exceed RequestTimeout (%s)", cfg.WriteTimeout, cfg.RequestTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.SessionTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SessionTTL must be positive, got: %s", cfg.SessionTTL))
	}
	if cfg.SessionCleanupInterval <= 0 {
		errors = append(errors, fmt.Sprintf("SessionCleanupInterval must be positive, got: %s", cfg.SessionCleanupInterval))
	}
	if cfg.Location == nil {
		errors = append(errors, fmt.Sprintf("Timezone must be a valid IANA zone, got: %s", cfg.Timezone))
	}
	if cfg.DefaultLanguage != locale.LangEnglish && cfg.DefaultLanguage != locale.LangGreek {
		errors = append(errors, fmt.Sprintf("DefaultLanguage must be one of [en, el], got: %s", cfg.DefaultLanguage))
	}

	if cfg.PlacesEnabled() {
		if cfg.PlacesDebounce < 0 {
			errors = append(errors, fmt.Sprintf("PlacesDebounce cannot be negative, got: %s", cfg.PlacesDebounce))
		}
		if cfg.PlacesMinQueryLength < 0 {
			errors = append(errors, fmt.Sprintf("PlacesMinQueryLength cannot be negative, got: %d", cfg.PlacesMinQueryLength))
		}
		if cfg.PlacesRequestsPerSecond <= 0 {
			errors = append(errors, fmt.Sprintf("PlacesRequestsPerSecond must be positive, got: %g", cfg.PlacesRequestsPerSecond))
		}
		if cfg.PlacesBurst <= 0 {
			errors = append(errors, fmt.Sprintf("PlacesBurst must be positive, got: %d", cfg.PlacesBurst))
		}
		if cfg.PlacesTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("PlacesTimeout must be positive, got: %s", cfg.PlacesTimeout))
		}
	}

	if cfg.CacheEnabled() && cfg.PlacesCacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("PlacesCacheTTL must be positive, got: %s", cfg.PlacesCacheTTL))
	}

	if (cfg.TelegramBotToken == "") != (cfg.TelegramChatID == "") {
		errors = append(errors, "TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}

	if cfg.Kafka != nil {
		errors = append(errors, cfg.Kafka.Errors()...)
	}

	if !cfg.TelegramEnabled() && (cfg.Kafka == nil || !cfg.Kafka.Enabled) {
		errors = append(errors, "At least one notifier channel (Kafka or Telegram) must be configured")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"session_ttl", cfg.SessionTTL,
		"session_cleanup_interval", cfg.SessionCleanupInterval,
		"timezone", cfg.Timezone,
		"default_language", cfg.DefaultLanguage,
		"places_enabled", cfg.PlacesEnabled(),
		"places_api_key", redact(cfg.PlacesAPIKey),
		"places_country", cfg.PlacesCountry,
		"places_debounce", cfg.PlacesDebounce,
		"places_min_query_length", cfg.PlacesMinQueryLength,
		"places_requests_per_second", cfg.PlacesRequestsPerSecond,
		"redis_addr", cfg.RedisAddr,
		"redis_password_set", cfg.RedisPassword != "",
		"places_cache_ttl", cfg.PlacesCacheTTL,
		"telegram_enabled", cfg.TelegramEnabled(),
		"telegram_bot_token", redact(cfg.TelegramBotToken),
	)
	if cfg.Kafka != nil {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

// redact keeps the last four characters of a secret so operators can tell
// keys apart.
func redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "***"
	}
	return "***" + secret[len(secret)-4:]
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
