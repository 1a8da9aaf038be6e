package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"llcart/controllers"
	"llcart/logs"
	"llcart/middleware"
	"llcart/repository"
	"llcart/routes"
	"llcart/services"
	"llcart/utils"
)

func main() {
	logger := logs.New()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, proceeding with environment variables")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.Error("failed to disconnect from MongoDB", "error", err)
			os.Exit(1)
		}
	}()
	db := client.Database(utils.DatabaseName)

	// Repositories
	buyerRepo := repository.NewBuyerRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	emailRepo := repository.NewEmailRepository(db)

	if err := cartRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Error("failed to ensure cart indexes", "error", err)
		os.Exit(1)
	}

	// External collaborators
	emailService := utils.NewEmailService(emailRepo, logger)
	mediaService, err := utils.NewMediaService()
	if err != nil {
		logger.Error("failed to initialize media service", "error", err)
		os.Exit(1)
	}
	paymentService := utils.NewPaymentService()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	appBaseURL := os.Getenv("APP_BASE_URL")
	if appBaseURL == "" {
		appBaseURL = fmt.Sprintf("http://localhost:%s", port)
	}

	// Services
	cartService := services.NewCartService(cartRepo, buyerRepo, productRepo)
	buyerService := services.NewBuyerService(buyerRepo, emailService, appBaseURL)
	sellerService := services.NewSellerService(sellerRepo, productRepo, orderRepo, emailService, appBaseURL)
	productService := services.NewProductService(productRepo, sellerRepo, cartRepo, mediaService)
	orderService := services.NewOrderService(orderRepo, cartRepo, buyerRepo, productRepo, paymentService, emailService)
	addressService := services.NewAddressService(addressRepo, buyerRepo)
	adminService := services.NewAdminService(adminRepo, sellerRepo, buyerRepo, productRepo, orderRepo, cartRepo, addressRepo, productService, emailService)

	// Controllers
	buyerController := controllers.NewBuyerController(buyerService, logger)
	sellerController := controllers.NewSellerController(sellerService, logger)
	productController := controllers.NewProductController(productService, logger)
	cartController := controllers.NewCartController(cartService, logger)
	orderController := controllers.NewOrderController(orderService, logger)
	addressController := controllers.NewAddressController(addressService, logger)
	adminController := controllers.NewAdminController(adminService, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.CORSMiddleware)
	routes.RegisterRoutes(router, buyerController, sellerController, productController,
		cartController, orderController, addressController, adminController)

	logger.Info("LL-CART backend is running", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
