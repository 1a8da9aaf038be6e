package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a listed item. ImagePublicID is the media host's
// identifier for the uploaded image, kept so the image can be deleted
// together with the product.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Cost          float64            `bson:"cost" json:"cost"`
	ImageURL      string             `bson:"image_url" json:"imageUrl"`
	ImagePublicID string             `bson:"image_public_id,omitempty" json:"-"`
	SellerID      primitive.ObjectID `bson:"seller_id,omitempty" json:"sellerId,omitempty"`
}
