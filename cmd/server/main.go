package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/peerpath/config"
	"github.com/d60-Lab/peerpath/internal/api"
	"github.com/d60-Lab/peerpath/internal/assist"
	"github.com/d60-Lab/peerpath/internal/repository"
	"github.com/d60-Lab/peerpath/internal/service"
	"github.com/d60-Lab/peerpath/internal/store"
	"github.com/d60-Lab/peerpath/pkg/auth"
	"github.com/d60-Lab/peerpath/pkg/cache"
	"github.com/d60-Lab/peerpath/pkg/database"
	"github.com/d60-Lab/peerpath/pkg/logger"
	"github.com/d60-Lab/peerpath/pkg/tracing"
)

// @title PeerPath API
// @version 1.0
// @description Campus mentorship forum: juniors ask, seniors and alumni answer with structured advice.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Server.Mode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(ctx, cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			// the cache is optional, assist calls go straight to the model
			logger.Warn("redis unavailable, assist cache disabled", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	var cacheClient redis.Cmdable
	if rdb != nil {
		cacheClient = rdb
	}
	var assistant assist.Assistant = assist.Disabled{}
	if cfg.AIEnabled() {
		if assistant, err = assist.New(ctx, cfg.AI, cacheClient); err != nil {
			return fmt.Errorf("init assist: %w", err)
		}
	} else {
		logger.Warn("ai api key not configured, assist features disabled")
	}

	st := store.New()
	restored := false
	var flusher *service.SnapshotFlusher
	if cfg.Database.Enabled {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		defer func() { _ = database.Close(db) }()

		repo := repository.NewSnapshotRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		flusher = service.NewSnapshotFlusher(st, repo, cfg.Database.FlushInterval)
		if restored, err = flusher.Restore(ctx); err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
	}
	if !restored && cfg.Seed {
		store.Seed(st)
		logger.Info("demo data seeded")
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	router, err := api.NewRouter(cfg, service.NewForumService(st, assistant), api.Options{
		Tokens: tokens,
		Health: func() gin.H {
			return gin.H{"ai_enabled": assistant.Enabled(), "persistence": cfg.Database.Enabled}
		},
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	var stopFlusher func(context.Context) error
	if flusher != nil {
		stopFlusher = flusher.Start()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.Bool("ai_enabled", assistant.Enabled()),
			zap.Bool("persistence", cfg.Database.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if stopFlusher != nil {
		if err := stopFlusher(shutdownCtx); err != nil {
			logger.Error("final snapshot flush", zap.Error(err))
		}
	}
	return nil
}
