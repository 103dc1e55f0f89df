package port

import (
	"context"

	"github.com/rl1809/shop-services/internal/core/domain"
)

type ProductRepository interface {
	// Save persists a product, assigning a generated id when empty
	Save(ctx context.Context, product domain.Product) (domain.Product, error)

	// Get retrieves a product by id, ErrNotFound when absent
	Get(ctx context.Context, id string) (domain.Product, error)

	// Delete removes a product by id, ErrNotFound when absent
	Delete(ctx context.Context, id string) error

	// List returns every stored product (unbounded full scan)
	List(ctx context.Context) ([]domain.Product, error)
}
