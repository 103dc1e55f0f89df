package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/adapter/client"
	"github.com/rl1809/shop-services/internal/adapter/handler"
	"github.com/rl1809/shop-services/internal/adapter/storage"
	"github.com/rl1809/shop-services/internal/config"
	"github.com/rl1809/shop-services/internal/core/service"
	"github.com/rl1809/shop-services/internal/obs"
)

func main() {
	cfg := config.Load()

	logger := obs.NewLogger("payment")
	defer logger.Sync()

	obs.InitPropagation()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: cfg.RedisPoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	// Initialize metrics
	reg := prometheus.NewRegistry()
	metrics := obs.NewMetrics(reg)

	// Wire adapters and service
	orders := storage.NewOrderAdapter(rdb)
	events := storage.NewStreamPublisher(rdb)
	fetcher := client.NewInventoryClient(cfg.ProductServiceURL, cfg.ProductTimeout, logger)

	paymentService := service.NewPaymentService(
		orders, fetcher, events, metrics, logger, cfg.CompletionDelay, cfg.QueueSize)

	// Start completion worker pool
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			paymentService.RunCompletionWorker(id)
		}(i)
	}
	logger.Info("started completion workers", zap.Int("count", cfg.WorkerCount))

	paymentHandler := handler.NewPaymentHandler(paymentService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /orders/{pk}", paymentHandler.GetOrder)
	mux.HandleFunc("POST /orders", paymentHandler.CreateOrder)

	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handler.WithCORS(cfg.FrontendOrigin,
			handler.WithRequestID(
				handler.WithTracing("payment",
					handler.WithObservability(logger, metrics, mux)))),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	// Stop HTTP server first so no new orders are enqueued
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	// Close completion queue and wait for in-flight completions
	paymentService.Close()
	wg.Wait()
	logger.Info("completion workers stopped")

	rdb.Close()
	logger.Info("connections closed")
}
