package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller approval statuses
const (
	SellerPending  = "pending"
	SellerApproved = "approved"
	SellerRejected = "rejected"
)

// Seller represents a merchant account; new sellers stay in "pending"
// until an admin approves or rejects them.
type Seller struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Mobile     string             `bson:"mobile" json:"mobile"`
	Status     string             `bson:"status" json:"status"`
	ResetToken string             `bson:"reset_token,omitempty" json:"-"`
}
