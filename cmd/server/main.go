// Command maf-server starts the Mind AI Forge registration HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/niteshram69/mind-ai-forge/internal/artifact"
	"github.com/niteshram69/mind-ai-forge/internal/config"
	"github.com/niteshram69/mind-ai-forge/internal/crypto"
	"github.com/niteshram69/mind-ai-forge/internal/migrate"
	"github.com/niteshram69/mind-ai-forge/internal/repository/postgres"
	httpserver "github.com/niteshram69/mind-ai-forge/internal/server/http"
	"github.com/niteshram69/mind-ai-forge/internal/service"
	"github.com/niteshram69/mind-ai-forge/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.Storage),
	)

	if cfg.JWTSecret == "" {
		logger.Fatal("missing jwt signing key (--jwt-secret or JWT_SECRET)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseDSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer db.Pool.Close()

	// Document storage
	var store artifact.Store
	uploadsDir := ""
	switch cfg.Storage {
	case config.StorageS3:
		store, err = artifact.NewS3Store(ctx, artifact.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3Endpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		if err != nil {
			logger.Fatal("init s3 storage", zap.Error(err))
		}
	default:
		store = artifact.NewDiskStore(cfg.UploadDir)
		uploadsDir = cfg.UploadDir
	}

	// Repositories and services
	userRepo := postgres.NewUserRepo(db)
	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, crypto.NewHasher(cfg.BcryptCost), tokens)
	userSvc := service.NewUserService(userRepo, store)
	adminSvc := service.NewAdminService(userRepo)

	srv := httpserver.New(httpserver.Deps{
		Auth:       authSvc,
		Users:      userSvc,
		Admin:      adminSvc,
		Tokens:     tokens,
		DB:         db,
		Log:        logger,
		UploadsDir: uploadsDir,
	})

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- hs.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
