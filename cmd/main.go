package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-cost-manager/config"
	"github.com/oksasatya/go-cost-manager/internal/container"
	pginfra "github.com/oksasatya/go-cost-manager/internal/infrastructure/postgres"
	"github.com/oksasatya/go-cost-manager/internal/interface/middleware"
	"github.com/oksasatya/go-cost-manager/internal/router"
	"github.com/oksasatya/go-cost-manager/pkg/helpers"
	"github.com/oksasatya/go-cost-manager/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.StoreBackend == config.BackendPostgres {
		// Run migrations using database/sql with pgx stdlib
		if cfg.MigrationsEnabled {
			if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
				logger.Fatalf("migration failed: %v", err)
			}
		}
		p, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			logger.Fatalf("failed to connect to postgres: %v", err)
		}
		pool = p
		defer pool.Close()
	} else {
		logger.Warn("using in-memory store; data is lost on restart")
	}

	// Redis (report cache and write rate limiting)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable; cache and rate limiting will fail open")
		}
		cancel()
	}

	// RabbitMQ publisher for cost events
	var pub *helpers.RabbitPublisher
	if cfg.RabbitMQURL != "" {
		p, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQCostQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; cost events disabled")
		} else {
			pub = p
			defer pub.Close()
		}
	}

	// Elasticsearch for cost search
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch client init failed; search disabled")
		es = nil
	}

	c, err := container.New(container.Deps{
		Config:    cfg,
		Logger:    logger,
		Pool:      pool,
		Redis:     rdb,
		Publisher: pub,
		ES:        es,
	})
	if err != nil {
		logger.Fatalf("failed to build container: %v", err)
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	// CORS
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg, c)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s (store=%s)", cfg.Port, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
