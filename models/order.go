package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a durable record of a completed purchase. It is never
// mutated after insertion, even when the product or cart it came
// from changes later.
type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BuyerID           primitive.ObjectID `bson:"buyer_id" json:"buyer_id"`
	SellerID          primitive.ObjectID `bson:"seller_id,omitempty" json:"seller_id,omitempty"`
	Amount            float64            `bson:"amount" json:"amount"`
	RazorpayPaymentID string             `bson:"razorpay_payment_id,omitempty" json:"razorpay_payment_id,omitempty"`
	OrderDate         time.Time          `bson:"order_date" json:"order_date"`
}
