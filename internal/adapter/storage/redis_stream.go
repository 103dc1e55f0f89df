package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-services/internal/core/domain"
)

// OrderCompletedStream is the append-only log external subscribers consume.
const OrderCompletedStream = "order_completed"

// StreamPublisher appends completed-order events to the Redis stream. The
// entry id is assigned by the store.
type StreamPublisher struct {
	client *redis.Client
}

func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{client: client}
}

func (p *StreamPublisher) PublishOrderCompleted(ctx context.Context, o domain.Order) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: OrderCompletedStream,
		Values: map[string]interface{}{
			"id":         o.ID,
			"product_id": o.ProductID,
			"price":      o.Price,
			"fee":        o.Fee,
			"total":      o.Total,
			"quantity":   o.Quantity,
			"status":     string(o.Status),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish order completed: %w", err)
	}
	return nil
}
