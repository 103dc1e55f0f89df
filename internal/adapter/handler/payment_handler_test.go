package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/core/domain"
	"github.com/rl1809/shop-services/internal/core/service"
	"github.com/rl1809/shop-services/internal/obs"
	"github.com/rl1809/shop-services/internal/port"
)

// Mock OrderRepository
type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	nextID int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]domain.Order)}
}

func (m *mockOrderRepo) Save(ctx context.Context, o domain.Order) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o.ID == "" {
		m.nextID++
		o.ID = fmt.Sprintf("order-%d", m.nextID)
	}
	m.orders[o.ID] = o
	return o, nil
}

func (m *mockOrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, port.ErrNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// Mock ProductFetcher
type mockFetcher struct {
	product domain.Product
	err     error
}

func (m *mockFetcher) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if m.err != nil {
		return domain.Product{}, m.err
	}
	return m.product, nil
}

// Mock EventPublisher
type mockPublisher struct{}

func (m *mockPublisher) PublishOrderCompleted(ctx context.Context, o domain.Order) error {
	return nil
}

func newPaymentMux(repo port.OrderRepository, fetcher port.ProductFetcher) (*http.ServeMux, *service.PaymentService) {
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	svc := service.NewPaymentService(repo, fetcher, &mockPublisher{}, metrics, zap.NewNop(), time.Millisecond, 100)
	h := NewPaymentHandler(svc, zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthCheck)
	mux.HandleFunc("GET /orders/{pk}", h.GetOrder)
	mux.HandleFunc("POST /orders", h.CreateOrder)
	return mux, svc
}

func TestCreateOrder_ReturnsPendingOrder(t *testing.T) {
	fetcher := &mockFetcher{product: domain.Product{ID: "P1", Name: "Widget", Price: 10.00, Quantity: 5}}
	mux, svc := newPaymentMux(newMockOrderRepo(), fetcher)
	defer svc.Close()

	body := strings.NewReader(`{"id":"P1","quantity":2}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var order domain.Order
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected pending, got %s", order.Status)
	}
	if math.Abs(order.Fee-2.00) > 1e-9 {
		t.Errorf("expected fee 2.00, got %f", order.Fee)
	}
	if math.Abs(order.Total-12.00) > 1e-9 {
		t.Errorf("expected total 12.00, got %f", order.Total)
	}
	if order.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", order.Quantity)
	}
}

func TestCreateOrder_InventoryDownReturns502(t *testing.T) {
	repo := newMockOrderRepo()
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	mux, svc := newPaymentMux(repo, fetcher)
	defer svc.Close()

	body := strings.NewReader(`{"id":"P1","quantity":1}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", body))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if repo.count() != 0 {
		t.Errorf("expected no order persisted, got %d", repo.count())
	}

	var e map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if e["error"] != "Product service unavailable" {
		t.Errorf("unexpected error message: %s", e["error"])
	}
}

func TestCreateOrder_InvalidBodies(t *testing.T) {
	fetcher := &mockFetcher{product: domain.Product{Price: 1}}
	mux, svc := newPaymentMux(newMockOrderRepo(), fetcher)
	defer svc.Close()

	payloads := []string{
		`not json`,
		`{"quantity":2}`,
		`{"id":"","quantity":2}`,
		`{"id":"P1","quantity":0}`,
		`{"id":"P1","quantity":-3}`,
	}

	for _, payload := range payloads {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(payload)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected 400, got %d", payload, rec.Code)
		}
	}
}

func TestGetOrder_NotFoundStatus(t *testing.T) {
	mux, svc := newPaymentMux(newMockOrderRepo(), &mockFetcher{})
	defer svc.Close()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var e map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if e["error"] != "Order not found" {
		t.Errorf("unexpected error message: %s", e["error"])
	}
}
