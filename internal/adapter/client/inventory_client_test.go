package client

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/core/domain"
)

func TestGetProduct_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/P1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Product{ID: "P1", Name: "Widget", Price: 10.00, Quantity: 5})
	}))
	defer srv.Close()

	c := NewInventoryClient(srv.URL, time.Second, zap.NewNop())

	product, err := c.GetProduct(context.Background(), "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != "P1" {
		t.Errorf("expected id P1, got %s", product.ID)
	}
	if math.Abs(product.Price-10.00) > 1e-9 {
		t.Errorf("expected price 10.00, got %f", product.Price)
	}
}

func TestGetProduct_NotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Product not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewInventoryClient(srv.URL, time.Second, zap.NewNop())

	if _, err := c.GetProduct(context.Background(), "missing"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestGetProduct_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately to force a transport error

	c := NewInventoryClient(srv.URL, time.Second, zap.NewNop())

	if _, err := c.GetProduct(context.Background(), "P1"); err == nil {
		t.Error("expected error when service is unreachable")
	}
}

func TestGetProduct_SurvivesCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.Product{ID: "P1", Name: "Widget", Price: 10.00, Quantity: 5})
	}))
	defer srv.Close()

	c := NewInventoryClient(srv.URL, time.Second, zap.NewNop())

	// the shared fetch must ride the client timeout, not the cancellation
	// of whichever collapsed caller arrived first
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	product, err := c.GetProduct(ctx, "P1")
	if err != nil {
		t.Fatalf("expected lookup to survive caller cancellation, got: %v", err)
	}
	if product.ID != "P1" {
		t.Errorf("expected id P1, got %s", product.ID)
	}
}

func TestGetProduct_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/P1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.Product{ID: "P1"})
	}))
	defer srv.Close()

	c := NewInventoryClient(srv.URL+"/", time.Second, zap.NewNop())

	if _, err := c.GetProduct(context.Background(), "P1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
