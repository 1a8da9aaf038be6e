package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Buyer represents a registered customer
type Buyer struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password,omitempty" json:"-"`
	Mobile            string             `bson:"mobile" json:"mobile"`
	IsVerified        bool               `bson:"is_verified" json:"is_verified"`
	VerificationToken string             `bson:"verification_token,omitempty" json:"-"`
	ResetToken        string             `bson:"reset_token,omitempty" json:"-"`
}
