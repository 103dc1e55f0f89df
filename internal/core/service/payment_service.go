package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/core/domain"
	"github.com/rl1809/shop-services/internal/obs"
	"github.com/rl1809/shop-services/internal/port"
)

// ErrInventoryUnavailable marks a failed product lookup against the
// inventory service. Handlers map it to 502.
var ErrInventoryUnavailable = errors.New("product service unavailable")

// PaymentService creates and completes orders. Creation is synchronous up to
// the pending save; completion rides a buffered queue drained by the worker
// pool started in main. Queued work survives a clean shutdown but not a
// crash mid-delay.
type PaymentService struct {
	orders  port.OrderRepository
	fetcher port.ProductFetcher
	events  port.EventPublisher
	metrics *obs.Metrics
	logger  *zap.Logger
	tracer  trace.Tracer

	delay time.Duration
	queue chan domain.Order
}

func NewPaymentService(
	orders port.OrderRepository,
	fetcher port.ProductFetcher,
	events port.EventPublisher,
	metrics *obs.Metrics,
	logger *zap.Logger,
	delay time.Duration,
	queueSize int,
) *PaymentService {
	return &PaymentService{
		orders:  orders,
		fetcher: fetcher,
		events:  events,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.Tracer("payment"),
		delay:   delay,
		queue:   make(chan domain.Order, queueSize),
	}
}

// CreateOrder fetches the referenced product, snapshots its price into a new
// pending order, persists it and enqueues the completion step. The caller
// gets the pending order back without waiting for completion.
func (s *PaymentService) CreateOrder(ctx context.Context, productID string, quantity int) (domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "payment.create_order")
	defer span.End()

	product, err := s.fetcher.GetProduct(ctx, productID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}

	order := domain.NewOrder(productID, product.Price, quantity)
	order, err = s.orders.Save(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	s.metrics.OrdersCreated.Inc()
	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("product_id", order.ProductID),
		zap.Float64("total", order.Total),
	)

	s.queue <- order
	return order, nil
}

func (s *PaymentService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.Get(ctx, id)
}

// RunCompletionWorker drains the completion queue until Close. Each order is
// completed exactly once, after the configured delay.
func (s *PaymentService) RunCompletionWorker(id int) {
	for order := range s.queue {
		time.Sleep(s.delay)
		s.completeOrder(order, id)
	}
}

func (s *PaymentService) completeOrder(order domain.Order, workerID int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "payment.complete_order")
	defer span.End()

	order.Status = domain.OrderStatusCompleted

	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		s.logger.Error("worker failed to save completed order",
			zap.Int("worker", workerID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return
	}

	if err := s.events.PublishOrderCompleted(ctx, saved); err != nil {
		s.logger.Error("worker failed to publish completion event",
			zap.Int("worker", workerID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return
	}

	s.metrics.OrdersCompleted.Inc()
	s.logger.Info("order completed",
		zap.Int("worker", workerID),
		zap.String("order_id", saved.ID),
	)
}

// Close stops the completion queue. Callers wait for the worker pool to
// drain before closing the store connection.
func (s *PaymentService) Close() {
	close(s.queue)
}
