package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is one cart line: a (buyer, product) pair with a positive quantity.
// At most one document exists per pair; adding an already-present product
// increments the existing line.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BuyerID   primitive.ObjectID `bson:"buyer_id" json:"buyer_id"`
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
