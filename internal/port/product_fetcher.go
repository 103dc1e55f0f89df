package port

import (
	"context"

	"github.com/rl1809/shop-services/internal/core/domain"
)

type ProductFetcher interface {
	// GetProduct looks up a product from the inventory service; any
	// transport failure or non-success response is an error
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}
