package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NGO_Platform/internal/config"
	"NGO_Platform/internal/logger"
	"NGO_Platform/internal/metrics"
	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/pkg"
	"NGO_Platform/internal/repository"
	"NGO_Platform/internal/repository/memory"
	"NGO_Platform/internal/repository/mysql"
	"NGO_Platform/internal/repository/redis"
	"NGO_Platform/internal/router"
	"NGO_Platform/internal/seed"
	"NGO_Platform/internal/service"
	"NGO_Platform/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.SetupDefault(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Storage
	var backend repository.Backend
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		db, err := mysql.Open(cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer func() { _ = mysql.Close(db) }()
		backend = mysql.NewRecordRepository(db)
	default:
		backend = memory.NewBackend()
	}
	st := store.New(backend)
	log.Info("store ready", slog.String("driver", cfg.StoreDriver))

	if cfg.SeedData {
		if _, err := seed.Load(ctx, st, log); err != nil {
			return err
		}
	}

	// Token revocation
	var blocklist repository.TokenBlocklist = memory.NewTokenRepository()
	if cfg.RedisAddr != "" {
		client, err := redis.Init(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		blocklist = redis.NewTokenRepository(client)
		log.Info("token blocklist on redis", slog.String("addr", cfg.RedisAddr))
	}

	// Events
	var publisher pkg.Publisher = pkg.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			return err
		}
		defer func() { _ = producer.Close() }()
		publisher = producer
		log.Info("publishing events to kafka", slog.String("topic", cfg.KafkaTopic))
	}
	events := service.NewEvents(publisher, log)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	opts := []service.AuthOption{
		service.WithBlocklist(blocklist),
		service.WithEvents(events),
		service.WithAuthRecorder(collector),
		service.WithLogger(log),
		service.WithAuthConfig(service.AuthConfig{
			ResetCodeTTL:    cfg.ResetCodeTTL,
			ExposeResetCode: cfg.ExposeResetCode,
		}),
	}
	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	if smtp.Enabled() {
		opts = append(opts, service.WithNotifier(pkg.NewSMTPNotifier(smtp)))
	}
	auth := service.NewAuthService(st,
		pkg.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		service.NewHasher(cfg.BcryptCost, cfg.HashWorkers),
		opts...,
	)

	limiter := middleware.NewRateLimiter(middleware.PerMinute(cfg.RateLimitAuth)).WithLogger(log)
	defer limiter.Stop()

	engine := router.New(router.Deps{
		Store:          st,
		Auth:           auth,
		Events:         events,
		Logger:         log,
		Metrics:        collector,
		Gatherer:       reg,
		AuthLimiter:    limiter,
		CORSOrigin:     cfg.CORSAllowedOrigin,
		TrustedProxies: cfg.TrustedProxies,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("API server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-stop:
	}
	log.Info("shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("API server stopped")
	return nil
}
