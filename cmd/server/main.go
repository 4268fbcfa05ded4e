package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"newsfeed-service/internal/adapters/primary/http/handlers"
	"newsfeed-service/internal/adapters/primary/http/middleware"
	"newsfeed-service/internal/adapters/secondary/nytimes"
	"newsfeed-service/internal/adapters/secondary/postgres"
	"newsfeed-service/internal/adapters/secondary/rawstore"
	"newsfeed-service/internal/config"
	"newsfeed-service/internal/core/services"
	"newsfeed-service/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Secondary adapters
	articleRepo := postgres.NewArticleRepository(pool)
	sectionRepo := postgres.NewSectionRepository(pool)
	runRepo := postgres.NewIngestRunRepository(pool)

	collector := metrics.NewCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)

	wireOpts := []nytimes.Option{nytimes.WithRecorder(collector)}
	if cfg.Ingest.RawDir != "" {
		raw, err := rawstore.New(cfg.Ingest.RawDir, nil)
		if err != nil {
			log.Warnf("raw store init failed (continuing without snapshots): %v", err)
		} else {
			wireOpts = append(wireOpts, nytimes.WithRawStore(raw))
			log.WithField("dir", cfg.Ingest.RawDir).Info("raw snapshot store enabled")
		}
	}
	wireClient := nytimes.NewClient(&cfg.NYTimes, wireOpts...)

	// Core services
	articleSvc := services.NewArticleService(articleRepo)
	sectionSvc := services.NewSectionService(sectionRepo, wireClient)
	ingestSvc := services.NewIngestService(articleRepo, runRepo, wireClient, collector, cfg.Ingest.PageLimit)
	popularSvc := services.NewPopularService(wireClient)

	// Ingest scheduler
	schedCtx, stopScheduler := context.WithCancel(context.Background())
	schedDone := make(chan struct{})
	if cfg.Ingest.Enabled {
		scheduler := services.NewScheduler(ingestSvc, sectionSvc, nil,
			cfg.Ingest.Interval, cfg.Ingest.Source, cfg.Ingest.Sections)
		go func() {
			defer close(schedDone)
			scheduler.Start(schedCtx)
		}()
	} else {
		close(schedDone)
		log.Info("ingest scheduler disabled")
	}

	// Primary adapter
	h := handlers.New(articleSvc, sectionSvc, ingestSvc, popularSvc, cfg.Auth.JWTSecret)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/newsfeed")
	h.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	stopScheduler()
	<-schedDone

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
