package utils

import (
	"context"
	"fmt"
	"math"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentService creates Razorpay payment orders. Amounts are rupees
// on the service boundary and paise on the wire.
type PaymentService struct {
	client *razorpay.Client
}

func NewPaymentService() *PaymentService {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		panic("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set in environment variables")
	}
	return &PaymentService{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder opens a payment order for the given amount and returns
// the gateway's order id.
func (p *PaymentService) CreateOrder(_ context.Context, amount float64, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": "INR",
		"receipt":  receipt,
	}
	body, err := p.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}
