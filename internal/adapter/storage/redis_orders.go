package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-services/internal/core/domain"
	"github.com/rl1809/shop-services/internal/port"
)

const orderKeyPrefix = "order:"

// OrderAdapter persists orders as Redis hashes under order:<id>. Completion
// re-saves the full hash; there is no partial update path.
type OrderAdapter struct {
	client *redis.Client
}

func NewOrderAdapter(client *redis.Client) *OrderAdapter {
	return &OrderAdapter{client: client}
}

func (a *OrderAdapter) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	err := a.client.HSet(ctx, orderKeyPrefix+o.ID,
		"product_id", o.ProductID,
		"price", o.Price,
		"fee", o.Fee,
		"total", o.Total,
		"quantity", o.Quantity,
		"status", string(o.Status),
	).Err()
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	return o, nil
}

func (a *OrderAdapter) Get(ctx context.Context, id string) (domain.Order, error) {
	vals, err := a.client.HGetAll(ctx, orderKeyPrefix+id).Result()
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(vals) == 0 {
		return domain.Order{}, port.ErrNotFound
	}

	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parse order price: %w", err)
	}
	fee, err := strconv.ParseFloat(vals["fee"], 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parse order fee: %w", err)
	}
	total, err := strconv.ParseFloat(vals["total"], 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parse order total: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return domain.Order{}, fmt.Errorf("parse order quantity: %w", err)
	}

	return domain.Order{
		ID:        id,
		ProductID: vals["product_id"],
		Price:     price,
		Fee:       fee,
		Total:     total,
		Quantity:  quantity,
		Status:    domain.OrderStatus(vals["status"]),
	}, nil
}
