// Package config provides runtime configuration values for both services.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server, the Redis store,
// the inventory lookup client and the completion worker pool. Each binary
// consumes the subset it needs.
type Config struct {
	HTTPAddr          string
	RedisAddr         string
	RedisPoolSize     int
	FrontendOrigin    string
	ProductServiceURL string
	ProductTimeout    time.Duration
	CompletionDelay   time.Duration
	WorkerCount       int
	QueueSize         int
	ShutdownTimeout   time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	ms := atoienv(key, defMs)
	return time.Duration(ms) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPoolSize:     atoienv("REDIS_POOL_SIZE", 100),
		FrontendOrigin:    getenv("FRONTEND_URL", "*"),
		ProductServiceURL: getenv("PRODUCT_SERVICE_URL", "http://localhost:8000"),
		ProductTimeout:    durenvms("PRODUCT_TIMEOUT_MS", 10000),
		CompletionDelay:   durenvms("COMPLETION_DELAY_MS", 5000),
		WorkerCount:       atoienv("WORKER_COUNT", 10),
		QueueSize:         atoienv("QUEUE_SIZE", 10000),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", 5),
	}
}
