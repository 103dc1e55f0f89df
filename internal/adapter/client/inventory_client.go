// Package client contains outbound HTTP clients for downstream services.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/rl1809/shop-services/internal/core/domain"
)

// InventoryClient calls the inventory service's product lookup endpoint.
// There is no retry: any transport failure or non-success status is an
// error, and the caller decides how to surface it.
type InventoryClient struct {
	baseURL string
	client  *http.Client
	group   singleflight.Group
	logger  *zap.Logger
}

func NewInventoryClient(baseURL string, timeout time.Duration, logger *zap.Logger) *InventoryClient {
	return &InventoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// GetProduct looks up a product by id. Concurrent lookups for the same id
// are collapsed into a single request; the result is not cached. The shared
// fetch is detached from the first caller's cancellation so collapsed
// callers are bounded by the client timeout only.
func (c *InventoryClient) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	v, err, _ := c.group.Do(id, func() (interface{}, error) {
		return c.fetchProduct(context.WithoutCancel(ctx), id)
	})
	if err != nil {
		return domain.Product{}, err
	}
	return v.(domain.Product), nil
}

func (c *InventoryClient) fetchProduct(ctx context.Context, id string) (domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+id, nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("build request: %w", err)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("product lookup failed", zap.String("product_id", id), zap.Error(err))
		return domain.Product{}, fmt.Errorf("product request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("product lookup returned error status",
			zap.String("product_id", id),
			zap.Int("status", resp.StatusCode),
		)
		return domain.Product{}, fmt.Errorf("product lookup returned status %d", resp.StatusCode)
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return domain.Product{}, fmt.Errorf("decode product: %w", err)
	}
	return product, nil
}
