package services

import (
	"context"
	"fmt"
	"time"

	"llcart/models"
	"llcart/repository"
)

// CheckoutSummary is returned when a payment order has been created
// for the buyer's cart total.
type CheckoutSummary struct {
	PaymentOrderID string  `json:"paymentOrderId"`
	Amount         float64 `json:"amount"`
}

// OrderService turns carts into durable orders. Checkout creates a
// payment order with the gateway; PlaceOrder records one order per
// seller once payment is confirmed and clears the cart.
type OrderService struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	buyers   repository.BuyerRepository
	products repository.ProductRepository
	payments PaymentGateway
	mailer   Mailer
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, buyers repository.BuyerRepository, products repository.ProductRepository, payments PaymentGateway, mailer Mailer) *OrderService {
	return &OrderService{orders: orders, carts: carts, buyers: buyers, products: products, payments: payments, mailer: mailer}
}

// Checkout totals the buyer's cart and opens a payment order for it.
func (s *OrderService) Checkout(ctx context.Context, buyerID string) (*CheckoutSummary, error) {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	if _, err := s.buyers.FindByID(ctx, bid); err != nil {
		return nil, mapNotFound(err, "buyer not found")
	}

	lines, err := s.carts.FindByBuyer(ctx, bid)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidArgument)
	}

	total := 0.0
	for i := range lines {
		product, err := s.products.FindByID(ctx, lines[i].ProductID)
		if err != nil {
			return nil, mapNotFound(err, "product in cart no longer exists")
		}
		total += product.Cost * float64(lines[i].Quantity)
	}

	paymentOrderID, err := s.payments.CreateOrder(ctx, total, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}
	return &CheckoutSummary{PaymentOrderID: paymentOrderID, Amount: total}, nil
}

// PlaceOrder records the purchase after payment: one order per seller
// represented in the cart, then the cart is cleared and the buyer gets
// a confirmation mail. Orders are immutable once written.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID, paymentID string) ([]models.Order, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrInvalidArgument)
	}
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	buyer, err := s.buyers.FindByID(ctx, bid)
	if err != nil {
		return nil, mapNotFound(err, "buyer not found")
	}

	lines, err := s.carts.FindByBuyer(ctx, bid)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidArgument)
	}

	amounts := make(map[string]float64)
	sellerIDs := make(map[string]models.Product)
	for i := range lines {
		product, err := s.products.FindByID(ctx, lines[i].ProductID)
		if err != nil {
			return nil, mapNotFound(err, "product in cart no longer exists")
		}
		key := product.SellerID.Hex()
		amounts[key] += product.Cost * float64(lines[i].Quantity)
		sellerIDs[key] = *product
	}

	now := time.Now()
	total := 0.0
	orders := make([]models.Order, 0, len(amounts))
	for key, amount := range amounts {
		order := models.Order{
			BuyerID:           bid,
			SellerID:          sellerIDs[key].SellerID,
			Amount:            amount,
			RazorpayPaymentID: paymentID,
			OrderDate:         now,
		}
		id, err := s.orders.Insert(ctx, &order)
		if err != nil {
			return nil, err
		}
		order.ID = id
		orders = append(orders, order)
		total += amount
	}

	if err := s.carts.DeleteByBuyer(ctx, bid); err != nil {
		return nil, err
	}

	_ = s.mailer.Send(ctx, models.EmailDetails{
		Recipient: buyer.Email,
		Subject:   "LL-CART order confirmation",
		MsgBody:   fmt.Sprintf("Thank you for your purchase! Your payment (ref %s) of %.2f has been received.", paymentID, total),
	})
	return orders, nil
}

func (s *OrderService) ListByBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	return s.orders.FindByBuyer(ctx, bid)
}

func (s *OrderService) ListBySeller(ctx context.Context, sellerID string) ([]models.Order, error) {
	sid, err := parseID(sellerID, "seller id")
	if err != nil {
		return nil, err
	}
	return s.orders.FindBySeller(ctx, sid)
}
