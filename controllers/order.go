package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"llcart/models"
	"llcart/services"
)

type OrderManager interface {
	Checkout(ctx context.Context, buyerID string) (*services.CheckoutSummary, error)
	PlaceOrder(ctx context.Context, buyerID, paymentID string) ([]models.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]models.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Order, error)
}

// OrderController handles checkout and order history requests
type OrderController struct {
	service OrderManager
	logger  *slog.Logger
}

func NewOrderController(service OrderManager, logger *slog.Logger) *OrderController {
	return &OrderController{service: service, logger: logger}
}

// Checkout totals the buyer's cart and opens a payment order.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuyerID string `json:"buyerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	summary, err := oc.service.Checkout(ctx, req.BuyerID)
	if err != nil {
		respondServiceError(w, oc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// PlaceOrder records the purchase after payment confirmation.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuyerID   string `json:"buyerId"`
		PaymentID string `json:"paymentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := oc.service.PlaceOrder(ctx, req.BuyerID, req.PaymentID)
	if err != nil {
		respondServiceError(w, oc.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, orders)
}

// GetOrdersByBuyer lists a buyer's order history.
func (oc *OrderController) GetOrdersByBuyer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := oc.service.ListByBuyer(ctx, mux.Vars(r)["buyerId"])
	if err != nil {
		respondServiceError(w, oc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrdersBySeller lists a seller's sales history.
func (oc *OrderController) GetOrdersBySeller(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := oc.service.ListBySeller(ctx, mux.Vars(r)["sellerId"])
	if err != nil {
		respondServiceError(w, oc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}
