package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-services/internal/core/domain"
	"github.com/rl1809/shop-services/internal/port"
)

const productKeyPrefix = "product:"

// ProductAdapter persists products as Redis hashes under product:<id>.
type ProductAdapter struct {
	client *redis.Client
}

func NewProductAdapter(client *redis.Client) *ProductAdapter {
	return &ProductAdapter{client: client}
}

func (a *ProductAdapter) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	err := a.client.HSet(ctx, productKeyPrefix+p.ID,
		"name", p.Name,
		"price", p.Price,
		"quantity", p.Quantity,
	).Err()
	if err != nil {
		return domain.Product{}, fmt.Errorf("save product: %w", err)
	}

	return p, nil
}

func (a *ProductAdapter) Get(ctx context.Context, id string) (domain.Product, error) {
	vals, err := a.client.HGetAll(ctx, productKeyPrefix+id).Result()
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	if len(vals) == 0 {
		return domain.Product{}, port.ErrNotFound
	}

	return productFromHash(id, vals)
}

func (a *ProductAdapter) Delete(ctx context.Context, id string) error {
	deleted, err := a.client.Del(ctx, productKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if deleted == 0 {
		return port.ErrNotFound
	}
	return nil
}

// List walks every product key. The catalog is small by contract; there is
// deliberately no pagination.
func (a *ProductAdapter) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}

	iter := a.client.Scan(ctx, 0, productKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		id := strings.TrimPrefix(iter.Val(), productKeyPrefix)

		p, err := a.Get(ctx, id)
		if errors.Is(err, port.ErrNotFound) {
			// deleted between scan and read
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}

	return products, nil
}

func productFromHash(id string, vals map[string]string) (domain.Product, error) {
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse product price: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse product quantity: %w", err)
	}

	return domain.Product{
		ID:       id,
		Name:     vals["name"],
		Price:    price,
		Quantity: quantity,
	}, nil
}
