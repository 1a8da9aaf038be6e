package repository

import (
	"errors"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Collection names in the llcart database.
const (
	BuyersCollection    = "buyers"
	SellersCollection   = "sellers"
	ProductsCollection  = "products"
	CartsCollection     = "carts"
	OrdersCollection    = "orders"
	AddressesCollection = "addresses"
	AdminsCollection    = "admins"
	EmailsCollection    = "email_details"
)
