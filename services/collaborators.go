package services

import (
	"context"
	"io"

	"llcart/models"
)

// Mailer delivers transactional mail. The concrete implementation
// lives in utils and talks to SendGrid.
type Mailer interface {
	Send(ctx context.Context, details models.EmailDetails) error
}

// MediaUploader hosts product images. The concrete implementation
// lives in utils and talks to Cloudinary.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (url string, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// PaymentGateway creates payment orders at checkout. The concrete
// implementation lives in utils and talks to Razorpay.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (orderID string, err error)
}
