package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rl1809/shop-services/internal/core/service"
	"github.com/rl1809/shop-services/internal/port"
)

type PaymentHandler struct {
	payment *service.PaymentService
	logger  *zap.Logger
}

// CreateOrderRequest is the order creation body: the product reference and
// the quantity to buy.
type CreateOrderRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func NewPaymentHandler(payment *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payment: payment, logger: logger}
}

func (h *PaymentHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	pk := r.PathValue("pk")

	order, err := h.payment.GetOrder(r.Context(), pk)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("failed to get order", zap.String("order_id", pk), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" || req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	order, err := h.payment.CreateOrder(r.Context(), req.ID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInventoryUnavailable) {
			h.logger.Warn("product lookup failed during order creation",
				zap.String("product_id", req.ID), zap.Error(err))
			writeError(w, http.StatusBadGateway, "Product service unavailable")
			return
		}
		h.logger.Error("failed to create order", zap.String("product_id", req.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}
