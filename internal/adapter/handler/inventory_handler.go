package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/core/domain"
	"github.com/rl1809/shop-services/internal/core/service"
	"github.com/rl1809/shop-services/internal/port"
)

type InventoryHandler struct {
	inventory *service.InventoryService
	logger    *zap.Logger
}

// createProductRequest uses pointer fields so absent numerics are
// distinguishable from zero values; missing fields are a client error.
type createProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

func NewInventoryHandler(inventory *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, logger: logger}
}

func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.inventory.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *InventoryHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product payload")
		return
	}
	if req.Name == "" || req.Price == nil || req.Quantity == nil || *req.Price < 0 || *req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "invalid product payload")
		return
	}

	// ids are store-generated, never client-supplied
	product := domain.Product{
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}

	created, err := h.inventory.CreateProduct(r.Context(), product)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	writeJSON(w, http.StatusOK, created)
}

func (h *InventoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	pk := r.PathValue("pk")

	product, err := h.inventory.GetProduct(r.Context(), pk)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to get product", zap.String("product_id", pk), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	pk := r.PathValue("pk")

	if err := h.inventory.DeleteProduct(r.Context(), pk); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to delete product", zap.String("product_id", pk), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	writeJSON(w, http.StatusOK, jsonMessage{Message: "Product deleted successfully"})
}
