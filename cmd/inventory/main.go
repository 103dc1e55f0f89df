package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/adapter/handler"
	"github.com/rl1809/shop-services/internal/adapter/storage"
	"github.com/rl1809/shop-services/internal/config"
	"github.com/rl1809/shop-services/internal/core/service"
	"github.com/rl1809/shop-services/internal/obs"
)

func main() {
	cfg := config.Load()

	logger := obs.NewLogger("inventory")
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

	// Wire adapters, service, handlers
	products := storage.NewProductAdapter(rdb)
	inventoryService := service.NewInventoryService(products, logger)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /products", inventoryHandler.ListProducts)
	mux.HandleFunc("POST /products", inventoryHandler.CreateProduct)
	mux.HandleFunc("GET /products/{pk}", inventoryHandler.GetProduct)
	mux.HandleFunc("DELETE /products/{pk}", inventoryHandler.DeleteProduct)

	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: handler.WithCORS(cfg.FrontendOrigin,
			handler.WithRequestID(
				handler.WithTracing("inventory",
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	rdb.Close()
	logger.Info("connections closed")
}
