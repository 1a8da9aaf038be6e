package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"llcart/models"
)

// CartManager is the slice of the cart service the HTTP layer needs.
type CartManager interface {
	AddToCart(ctx context.Context, buyerID, productID string, quantity int) (*models.CartDTO, error)
	GetCartItems(ctx context.Context, buyerID string) ([]models.CartDTO, error)
	GetCartCount(ctx context.Context, buyerID string) (int64, error)
	RemoveCartItem(ctx context.Context, cartID string) error
	ClearCart(ctx context.Context, buyerID string) error
	UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) (*models.CartDTO, error)
}

// CartController handles cart-related requests
type CartController struct {
	service CartManager
	logger  *slog.Logger
}

func NewCartController(service CartManager, logger *slog.Logger) *CartController {
	return &CartController{service: service, logger: logger}
}

// AddToCart adds a product to a buyer's cart; quantity defaults to 1.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	buyerID := r.FormValue("buyerId")
	productID := r.FormValue("productId")
	quantity := 1
	if q := r.FormValue("quantity"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			respondError(w, http.StatusBadRequest, "quantity must be an integer")
			return
		}
		quantity = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	line, err := cc.service.AddToCart(ctx, buyerID, productID, quantity)
	if err != nil {
		respondServiceError(w, cc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

// GetCartItems lists the buyer's cart; an empty cart is a 200 with an
// empty array.
func (cc *CartController) GetCartItems(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyerId"]

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := cc.service.GetCartItems(ctx, buyerID)
	if err != nil {
		respondServiceError(w, cc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GetCartCount returns the number of cart lines for the buyer.
func (cc *CartController) GetCartCount(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyerId"]

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	count, err := cc.service.GetCartCount(ctx, buyerID)
	if err != nil {
		respondServiceError(w, cc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, count)
}

// RemoveCartItem deletes one cart line by id.
func (cc *CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := cc.service.RemoveCartItem(ctx, cartID); err != nil {
		respondServiceError(w, cc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart item removed successfully"})
}

// ClearCart deletes every cart line for the buyer.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	buyerID := mux.Vars(r)["buyerId"]

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := cc.service.ClearCart(ctx, buyerID); err != nil {
		respondServiceError(w, cc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared successfully"})
}

// UpdateQuantity sets the quantity of the line for (buyer, product).
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	buyerID := r.FormValue("buyerId")
	productID := r.FormValue("productId")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "quantity must be an integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	line, err := cc.service.UpdateQuantity(ctx, buyerID, productID, quantity)
	if err != nil {
		respondServiceError(w, cc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}
