package port

import (
	"context"

	"github.com/rl1809/shop-services/internal/core/domain"
)

type OrderRepository interface {
	// Save persists an order, assigning a generated id when empty
	Save(ctx context.Context, order domain.Order) (domain.Order, error)

	// Get retrieves an order by id, ErrNotFound when absent
	Get(ctx context.Context, id string) (domain.Order, error)
}
