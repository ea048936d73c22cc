package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pytechdigital/content-api/handlers"
	"github.com/pytechdigital/content-api/internal/catalog/repository"
	"github.com/pytechdigital/content-api/internal/catalog/service"
	"github.com/pytechdigital/content-api/internal/config"
	"github.com/pytechdigital/content-api/internal/contact"
	"github.com/pytechdigital/content-api/internal/database"
	"github.com/pytechdigital/content-api/internal/pages"
	"github.com/pytechdigital/content-api/internal/seed"
	"github.com/pytechdigital/content-api/pkg/logger"
	"github.com/pytechdigital/content-api/pkg/metrics"
	"github.com/pytechdigital/content-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v brand=%q", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Brand.Name)

	r := gin.New()
	r.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races with the
	// database container. When no URI is configured (or all attempts fail) the
	// server falls back to an in-memory catalog seeded from the built-in sets.
	ctx := context.Background()
	var client *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			client = nil
		}
	}

	var catalogRepo service.Repository
	var contactRepo contact.Repository
	if client != nil {
		defer func() { _ = client.Disconnect(ctx) }()
		db := client.Database(cfg.MongoDB.Database)

		// seed before accepting requests; failures are logged, not fatal
		if err := seed.NewSeeder(db).Run(ctx); err != nil {
			logger.Errorf("Error during startup seeding: %v", err)
		}

		catalogRepo = repository.NewMongoRepo(db)
		contactRepo = contact.NewMongoRepository(db.Collection("contact_submissions"))
	} else {
		logger.Warn("running with in-memory store; submissions will not survive restarts")
		mem := repository.NewMemoryRepo()
		mem.Load(seed.Services(), seed.Cities(), seed.Testimonials(), seed.Portfolio())
		catalogRepo = mem
		contactRepo = contact.NewMemoryRepository()
	}

	catalogSvc := service.New(catalogRepo)
	contactSvc := contact.NewService(contactRepo)
	composer := pages.NewComposer(catalogSvc, pages.Brand{Name: cfg.Brand.Name, Phone: cfg.Brand.Phone})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: storage is the only critical dependency; the in-memory
	// fallback still counts as ready for serving reference data
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"mongodb": client != nil,
			"redis":   redisClient != nil || cfg.Redis.Host == "",
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	api := r.Group("/api")
	handlers.NewCatalogHandler(catalogSvc, cfg.Brand.Name).Register(api)
	handlers.NewPagesHandler(composer).Register(api)
	handlers.NewContactHandler(contactSvc).Register(api)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting content API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
