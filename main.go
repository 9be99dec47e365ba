package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cityreport-be/config"
	"cityreport-be/events"
	"cityreport-be/logger"
	"cityreport-be/middlewares"
	"cityreport-be/repository"
	"cityreport-be/routes"
	"cityreport-be/store"
)

func main() {
	cfg, envLoaded := config.Load()
	log := logger.New(cfg.Env)
	if !envLoaded {
		log.Info().Msg("No .env file found")
	}
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx := context.Background()

	snap := store.Seed()
	if cfg.SeedFile != "" {
		loaded, err := store.LoadFixture(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("Failed to load seed file")
		}
		snap = loaded
	}
	log.Info().Int("complaints", len(snap.Complaints)).Msg("snapshot loaded")

	var repo repository.Repository = repository.NewMemoryRepository(snap)
	if cfg.MongoURI != "" {
		db, err := config.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		mongoRepo := repository.NewMongoRepository(db)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to create indexes")
		}
		seeded, err := mongoRepo.Seed(ctx, snap)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed complaints")
		}
		log.Info().Bool("seeded", seeded).Str("database", cfg.MongoDatabase).Msg("MongoDB connection established")
		repo = mongoRepo
	}

	var counter middlewares.Counter
	if cfg.RedisAddress != "" {
		client, err := config.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		counter = middlewares.RedisCounter{Client: client}
		log.Info().Int("daily_limit", cfg.ComplaintDailyLimit).Msg("complaint rate limiting enabled")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer p.Close()
		publisher = p
	}

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; authenticated routes will fail")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := routes.NewRouter(routes.Deps{
		Log:             log,
		Repo:            repo,
		Snapshot:        snap,
		Publisher:       publisher,
		Counter:         counter,
		DailyLimit:      cfg.ComplaintDailyLimit,
		RateLimitPrefix: cfg.RateLimitPrefix,
		JWTSecret:       cfg.JWTSecret,
		CORSOrigin:      cfg.CORSOrigin,
		Registry:        reg,
	})

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("Failed to start server")
		os.Exit(1)
	}
}
