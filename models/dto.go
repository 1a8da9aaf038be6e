package models

// ProductDTO is the product shape returned inside a cart line.
type ProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	ImageURL    string  `json:"imageUrl"`
	SellerID    string  `json:"sellerId,omitempty"`
}

// CartDTO is the cart line shape returned across the HTTP boundary,
// with the referenced product resolved.
type CartDTO struct {
	ID       string     `json:"id"`
	Quantity int        `json:"quantity"`
	Product  ProductDTO `json:"product"`
}

// SalesBucket is one row of a time-bucketed sales rollup.
type SalesBucket struct {
	Period     string  `bson:"period" json:"period"`
	OrderCount int64   `bson:"orderCount" json:"orderCount"`
	Revenue    float64 `bson:"revenue" json:"revenue"`
}

// AdminMetrics is the aggregate dashboard snapshot for the admin.
type AdminMetrics struct {
	TotalSellers  int64   `json:"totalSellers"`
	TotalBuyers   int64   `json:"totalBuyers"`
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// SellerMetrics is the per-seller dashboard snapshot.
type SellerMetrics struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
