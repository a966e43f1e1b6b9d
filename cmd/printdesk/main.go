package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/printdesk/printdesk/internal/app"
	"github.com/printdesk/printdesk/internal/clients"
	"github.com/printdesk/printdesk/internal/products"
	"github.com/printdesk/printdesk/internal/quotes"
	"github.com/printdesk/printdesk/internal/reports"
	"github.com/printdesk/printdesk/internal/settings"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	store, closeStore, err := app.NewStore(ctx, cfg, redisClient)
	if err != nil {
		logger.Error("init store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	reportCache := app.NewReportCache(ctx, cfg, redisClient)
	if reportCache == nil {
		logger.Warn("report cache disabled, reports recompute on every read")
	} else if err := reportCache.ListenForInvalidation(ctx, ""); err != nil {
		logger.Warn("report cache invalidation listener", slog.Any("error", err))
	}

	clientRepo := clients.NewRepository(store)
	productRepo := products.NewRepository(store)
	quoteRepo := quotes.NewRepository(store)

	clientService := clients.NewService(clientRepo, reportCache)
	productService := products.NewService(productRepo, reportCache)
	quoteService := quotes.NewService(quoteRepo, clientRepo, productRepo, reportCache)
	reportService := reports.NewService(quoteRepo, clientRepo, productRepo, reportCache)
	settingsService := settings.NewService(store)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		ClientsHandler:  clients.NewHandler(logger, clientService),
		ProductsHandler: products.NewHandler(logger, productService),
		QuotesHandler:   quotes.NewHandler(logger, quoteService),
		ReportsHandler:  reports.NewHandler(logger, reportService),
		SettingsHandler: settings.NewHandler(logger, settingsService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
		}
	}()

	logger.Info("printdesk listening", slog.String("addr", cfg.AppAddr), slog.String("store", cfg.StoreDriver))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server run", slog.Any("error", err))
		os.Exit(1)
	}
}
