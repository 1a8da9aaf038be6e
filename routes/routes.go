package routes

import (
	"github.com/gorilla/mux"

	"llcart/controllers"
	"llcart/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	buyerController *controllers.BuyerController,
	sellerController *controllers.SellerController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	addressController *controllers.AddressController,
	adminController *controllers.AdminController,
) {
	// Buyer routes
	router.HandleFunc("/buyer/register", buyerController.Register).Methods("POST")
	router.HandleFunc("/buyer/verify", buyerController.VerifyEmail).Methods("GET")
	router.HandleFunc("/buyer/login", buyerController.Login).Methods("POST")
	router.HandleFunc("/buyer/forgot-password", buyerController.ForgotPassword).Methods("POST")
	router.HandleFunc("/buyer/reset-password", buyerController.ResetPassword).Methods("POST")

	buyer := router.PathPrefix("/buyer").Subrouter()
	buyer.Use(middleware.AuthMiddleware)
	buyer.HandleFunc("/profile", buyerController.GetProfile).Methods("GET")

	// Seller routes
	router.HandleFunc("/seller/register", sellerController.Register).Methods("POST")
	router.HandleFunc("/seller/login", sellerController.Login).Methods("POST")
	router.HandleFunc("/seller/forgot-password", sellerController.ForgotPassword).Methods("POST")
	router.HandleFunc("/seller/reset-password", sellerController.ResetPassword).Methods("POST")
	router.HandleFunc("/seller/profile", sellerController.UpdateProfile).Methods("PUT")
	router.HandleFunc("/seller/{id}/metrics", sellerController.Metrics).Methods("GET")
	router.HandleFunc("/seller/{id}/sales", sellerController.SalesData).Methods("GET")
	router.HandleFunc("/seller/{id}", sellerController.GetByID).Methods("GET")

	// Product routes
	router.HandleFunc("/product/add", productController.AddProduct).Methods("POST")
	router.HandleFunc("/product/update", productController.UpdateProduct).Methods("PUT")
	router.HandleFunc("/product/all", productController.GetProducts).Methods("GET")
	router.HandleFunc("/product/seller/{sellerId}", productController.GetProductsBySeller).Methods("GET")
	router.HandleFunc("/product/category/{category}", productController.GetProductsByCategory).Methods("GET")
	router.HandleFunc("/product/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/product/{id}", productController.DeleteProduct).Methods("DELETE")

	// Cart routes
	router.HandleFunc("/cart/add", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/buyer/{buyerId}", cartController.GetCartItems).Methods("GET")
	router.HandleFunc("/cart/count/{buyerId}", cartController.GetCartCount).Methods("GET")
	router.HandleFunc("/cart/remove/{cartId}", cartController.RemoveCartItem).Methods("DELETE")
	router.HandleFunc("/cart/clear/{buyerId}", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/update", cartController.UpdateQuantity).Methods("PUT")

	// Order routes
	router.HandleFunc("/order/checkout", orderController.Checkout).Methods("POST")
	router.HandleFunc("/order/place", orderController.PlaceOrder).Methods("POST")
	router.HandleFunc("/order/buyer/{buyerId}", orderController.GetOrdersByBuyer).Methods("GET")
	router.HandleFunc("/order/seller/{sellerId}", orderController.GetOrdersBySeller).Methods("GET")

	// Address routes
	router.HandleFunc("/address/add", addressController.AddAddress).Methods("POST")
	router.HandleFunc("/address/buyer/{buyerId}", addressController.GetAddressesByBuyer).Methods("GET")
	router.HandleFunc("/address/{id}", addressController.DeleteAddress).Methods("DELETE")

	// Admin routes
	router.HandleFunc("/admin/login", adminController.Login).Methods("POST")
	router.HandleFunc("/admin/register", adminController.Register).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/seller", adminController.AddSeller).Methods("POST")
	admin.HandleFunc("/sellers", adminController.ViewSellers).Methods("GET")
	admin.HandleFunc("/sellers/pending", adminController.ViewPendingSellers).Methods("GET")
	admin.HandleFunc("/seller/approve/{id}", adminController.ApproveSeller).Methods("PUT")
	admin.HandleFunc("/seller/reject/{id}", adminController.RejectSeller).Methods("PUT")
	admin.HandleFunc("/seller/{id}", adminController.DeleteSeller).Methods("DELETE")
	admin.HandleFunc("/buyers", adminController.ViewBuyers).Methods("GET")
	admin.HandleFunc("/buyer/{id}", adminController.DeleteBuyer).Methods("DELETE")
	admin.HandleFunc("/metrics", adminController.Metrics).Methods("GET")
	admin.HandleFunc("/sales", adminController.SalesData).Methods("GET")
}
