package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a delivery address owned by one buyer.
type Address struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BuyerID     primitive.ObjectID `bson:"buyer_id" json:"buyer_id"`
	HouseNumber string             `bson:"house_number" json:"houseNumber"`
	Street      string             `bson:"street" json:"street"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	Pincode     string             `bson:"pincode" json:"pincode"`
}
