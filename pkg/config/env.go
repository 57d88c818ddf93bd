package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSessionTTL             = "SESSION_TTL"
	EnvSessionCleanupInterval = "SESSION_CLEANUP_INTERVAL"
	EnvTimezone               = "TIMEZONE"
	EnvDefaultLanguage        = "DEFAULT_LANGUAGE"

	EnvPlacesAPIKey            = "PLACES_API_KEY"
	EnvPlacesBaseURL           = "PLACES_BASE_URL"
	EnvPlacesLanguage          = "PLACES_LANGUAGE"
	EnvPlacesCountry           = "PLACES_COUNTRY"
	EnvPlacesDebounce          = "PLACES_DEBOUNCE"
	EnvPlacesMinQueryLength    = "PLACES_MIN_QUERY_LENGTH"
	EnvPlacesRequestsPerSecond = "PLACES_REQUESTS_PER_SECOND"
	EnvPlacesBurst             = "PLACES_BURST"
	EnvPlacesTimeout           = "PLACES_TIMEOUT"

	EnvRedisAddr      = "REDIS_ADDR"
	EnvRedisPassword  = "REDIS_PASSWORD"
	EnvRedisDB        = "REDIS_DB"
	EnvPlacesCacheTTL = "PLACES_CACHE_TTL"

	EnvTelegramBotToken = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID   = "TELEGRAM_CHAT_ID"
	EnvTelegramBaseURL  = "TELEGRAM_BASE_URL"
)
