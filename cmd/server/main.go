// Command server runs the knowledge base as a standalone HTTP service:
// SQLite storage, versioned articles, feedback aggregation, category tree,
// relations, and database-backed search behind a JSON API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	_ "github.com/jeffersongoncalves/go-knowledge-base/docs"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/config"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/events"
	httpapi "github.com/jeffersongoncalves/go-knowledge-base/internal/http"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/observability"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/search"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/sysutil"
)

const version = "1.0.0"

// @title           Knowledge Base API
// @version         1.0
// @description     Embeddable knowledge base: categories, versioned articles, feedback, and search.
// @BasePath        /api/v1
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Table names are resolved at migration and query time, so the prefix
	// must be set before anything touches the database.
	domain.SetTablePrefix(cfg.KB.TablePrefix)

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Fatal().Err(err).Msg("gorm tracing plugin failed")
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	engine, err := search.New(cfg.KB.SearchEngine, cfg.KB.SearchResultsLimit)
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.KB.SearchEngine).Msg("search engine setup failed")
	}

	bus := events.NewBus()
	bus.Subscribe(func(ctx context.Context, e events.Event) {
		log.Info().Str("event", e.Name()).Msg("knowledge base event")
	})

	svc := &services.KnowledgeBaseService{
		DB:     db,
		KB:     cfg.KB,
		Bus:    bus,
		Engine: engine,
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, svc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("stopped")
}
