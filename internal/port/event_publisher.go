package port

import (
	"context"

	"github.com/rl1809/shop-services/internal/core/domain"
)

type EventPublisher interface {
	// PublishOrderCompleted appends the full order payload to the
	// completed-order event stream
	PublishOrderCompleted(ctx context.Context, order domain.Order) error
}
