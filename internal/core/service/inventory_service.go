package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/core/domain"
	"github.com/rl1809/shop-services/internal/port"
)

// InventoryService owns the product catalog. Products live entirely in the
// store; the service keeps no state of its own.
type InventoryService struct {
	products port.ProductRepository
	logger   *zap.Logger
}

func NewInventoryService(products port.ProductRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{products: products, logger: logger}
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *InventoryService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.products.Save(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("save product: %w", err)
	}

	s.logger.Info("product created",
		zap.String("product_id", created.ID),
		zap.String("name", created.Name),
		zap.Float64("price", created.Price),
	)
	return created, nil
}

func (s *InventoryService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}
