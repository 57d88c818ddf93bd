package config

import "time"

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // 64KB
	DefaultIdempotencyTTL = 10 * time.Minute

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 35 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSessionTTL             = 2 * time.Hour
	DefaultSessionCleanupInterval = 5 * time.Minute
	DefaultTimezone               = "Europe/Athens"
	DefaultDefaultLanguage        = "en"

	DefaultPlacesLanguage          = "en"
	DefaultPlacesCountry           = "gr"
	DefaultPlacesDebounce          = 300 * time.Millisecond
	DefaultPlacesMinQueryLength    = 3
	DefaultPlacesRequestsPerSecond = 10.0
	DefaultPlacesBurst             = 5
	DefaultPlacesTimeout           = 5 * time.Second

	DefaultRedisDB        = 0
	DefaultPlacesCacheTTL = 24 * time.Hour
)
