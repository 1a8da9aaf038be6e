package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a platform administrator credential record.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password,omitempty" json:"-"`
}
