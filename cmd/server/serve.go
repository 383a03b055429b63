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

	"go.uber.org/zap"

	"github.com/studioreel/website/config"
	"github.com/studioreel/website/internal/auth"
	"github.com/studioreel/website/internal/blogs"
	"github.com/studioreel/website/internal/contacts"
	"github.com/studioreel/website/internal/dashboard"
	"github.com/studioreel/website/internal/demos"
	"github.com/studioreel/website/internal/media"
	"github.com/studioreel/website/internal/server"
	"github.com/studioreel/website/internal/videos"
	"github.com/studioreel/website/pkg/database"
	"github.com/studioreel/website/pkg/redis"
	"github.com/studioreel/website/pkg/storage"
)

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := redis.NewClient(ctx, redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	s3Client, err := storage.NewS3(ctx, storage.S3Config{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.Endpoint,
		PublicBaseURL:   cfg.AWS.PublicBaseURL,
	}, logger)
	if err != nil {
		return fmt.Errorf("s3: %w", err)
	}
	mediaAdapter := media.NewAdapter(s3Client, media.Buckets{
		Videos: cfg.AWS.VideosBucket,
		Images: cfg.AWS.ImagesBucket,
	}, logger)

	// Admin sessions
	sessions := auth.NewManager(auth.NewRedisStore(rdb.Client), cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)
	creds := auth.Credentials{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}

	videoRepo := videos.NewRepository(pool)
	blogRepo := blogs.NewRepository(pool)
	contactRepo := contacts.NewRepository(pool)
	demoRepo := demos.NewRepository(pool)

	router := server.NewRouter(server.Handlers{
		Auth:     auth.NewHandler(sessions, creds, cfg.Session.CookieSecure, logger),
		Videos:   videos.NewHandler(videoRepo, mediaAdapter, logger),
		Blogs:    blogs.NewHandler(blogRepo, mediaAdapter, logger),
		Contacts: contacts.NewHandler(contactRepo, logger),
		Demos:    demos.NewHandler(demoRepo, logger),
		Dashboard: dashboard.NewHandler(dashboard.Sources{
			Videos:   videoRepo,
			Blogs:    blogRepo,
			Contacts: contactRepo,
			Demos:    demoRepo,
		}, logger),
	}, sessions, int64(cfg.Server.MaxUploadMB)<<20, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
	return nil
}

func runMigrate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied")
	return nil
}
