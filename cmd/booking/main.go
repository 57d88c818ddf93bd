package main

import (
	"context"
	"time"

	"transferbook/internal/notifier"
	"transferbook/internal/places"
	placeshandler "transferbook/internal/places/handler"
	"transferbook/internal/submission"
	"transferbook/internal/wizard"
	"transferbook/internal/wizard/handler"
	"transferbook/internal/wizard/service"
	"transferbook/internal/wizard/validator"
	"transferbook/pkg/app"
	"transferbook/pkg/config"
	"transferbook/pkg/contracts"
	"transferbook/pkg/kafka"
	kafkamiddleware "transferbook/pkg/kafka/middleware"
	"transferbook/pkg/locale"

	"github.com/go-redis/redis/v8"
)

const ServiceName = "booking"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Booking Wizard service")

	catalog, err := locale.NewCatalog(cfg.DefaultLanguage)
	if err != nil {
		cfg.Log.Fatal("Failed to build message catalog", "error", err)
	}

	store := wizard.NewInMemorySessionStore(cfg.SessionTTL, cfg.SessionCleanupInterval, cfg.Log.Component("session_store"))

	channels, closers := initNotifiers(cfg)
	submitter := submission.NewSubmitter(
		notifier.NewMultiNotifier(cfg.Log.Component("notifier"), channels...),
		cfg.Log.Component("submission"),
	)

	sessionService := service.NewSessionService(
		store,
		validator.NewStepValidator(cfg.Log),
		catalog,
		submitter,
		cfg.Location,
		cfg.Log.Component("wizard"),
	)

	handlers := []contracts.Handler{handler.NewSessionHandler(sessionService, cfg.Log)}
	if placeService, cacheCloser := initPlaces(cfg); placeService != nil {
		handlers = append(handlers, placeshandler.NewPlaceHandler(placeService, cfg.Log))
		if cacheCloser != nil {
			closers = append(closers, *cacheCloser)
		}
	}

	serverApp := app.NewApplication(cfg, handler.NewHealthHandler(store, cfg.Log), handlers...)
	serverApp.OnShutdown("session_store", func() error {
		store.Stop()
		return nil
	})
	for _, c := range closers {
		serverApp.OnShutdown(c.name, c.fn)
	}
	serverApp.Run()
}

type closer struct {
	name string
	fn   func() error
}

func initNotifiers(cfg *config.Config) ([]notifier.Channel, []closer) {
	var channels []notifier.Channel
	var closers []closer
	log := cfg.Log.Component("notifier")

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka, cfg.Kafka.LeadsTopic, log)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		if cfg.Kafka.EnableMiddleware {
			producer.Use(kafkamiddleware.LoggingProducerMiddleware(log))
		}
		channels = append(channels, notifier.WithLogging(notifier.NewKafkaNotifier(producer, ServiceName), log))
		closers = append(closers, closer{name: "kafka_producer", fn: producer.Close})
		cfg.Log.Info("Kafka lead notifier enabled", "topic", producer.Topic())
	}

	if cfg.TelegramEnabled() {
		telegram := notifier.NewTelegramNotifier(notifier.TelegramConfig{
			BaseURL:  cfg.TelegramBaseURL,
			BotToken: cfg.TelegramBotToken,
			ChatID:   cfg.TelegramChatID,
		}, nil)
		channels = append(channels, notifier.WithLogging(telegram, log))
		cfg.Log.Info("Telegram lead notifier enabled")
	}

	return channels, closers
}

func initPlaces(cfg *config.Config) (places.PlaceService, *closer) {
	if !cfg.PlacesEnabled() {
		cfg.Log.Info("Place lookup disabled: no API key configured")
		return nil, nil
	}
	log := cfg.Log.Component("places")

	var provider places.Provider = places.NewGoogleClient(places.GoogleConfig{
		BaseURL:           cfg.PlacesBaseURL,
		APIKey:            cfg.PlacesAPIKey,
		Language:          cfg.PlacesLanguage,
		Country:           cfg.PlacesCountry,
		RequestsPerSecond: cfg.PlacesRequestsPerSecond,
		Burst:             cfg.PlacesBurst,
		Timeout:           cfg.PlacesTimeout,
	})

	var redisCloser *closer
	if cfg.CacheEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cfg.Log.Warn("Redis unreachable, place details will be fetched uncached until it recovers", "addr", cfg.RedisAddr, "error", err)
		}

		provider = places.NewCachedProvider(provider, places.NewRedisDetailsCache(redisClient, cfg.PlacesCacheTTL), log)
		redisCloser = &closer{name: "redis", fn: redisClient.Close}
		cfg.Log.Info("Place details cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.PlacesCacheTTL)
	}

	debouncer := places.NewDebouncer(provider, cfg.PlacesDebounce, cfg.PlacesMinQueryLength)
	resolver := places.NewResolver(provider, log)

	cfg.Log.Info("Place lookup enabled", "language", cfg.PlacesLanguage, "country", cfg.PlacesCountry)
	return places.NewPlaceService(debouncer, resolver), redisCloser
}
