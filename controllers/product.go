package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"llcart/models"
)

const maxImageSize = 10 << 20 // 10 MiB multipart memory budget

type ProductManager interface {
	AddProduct(ctx context.Context, product *models.Product, image io.Reader) (string, error)
	UpdateProduct(ctx context.Context, product *models.Product, image io.Reader) error
	DeleteProduct(ctx context.Context, productID string) error
	ViewAll(ctx context.Context) ([]models.Product, error)
	ViewByID(ctx context.Context, productID string) (*models.Product, error)
	ViewBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	ViewByCategory(ctx context.Context, category string) ([]models.Product, error)
}

// ProductController handles catalog requests
type ProductController struct {
	service ProductManager
	logger  *slog.Logger
}

func NewProductController(service ProductManager, logger *slog.Logger) *ProductController {
	return &ProductController{service: service, logger: logger}
}

// parseProductForm reads the multipart product fields and the optional
// image file. The caller owns closing the returned reader.
func parseProductForm(r *http.Request) (*models.Product, io.ReadCloser, error) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return nil, nil, err
	}

	cost := 0.0
	if c := r.FormValue("cost"); c != "" {
		parsed, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, nil, err
		}
		cost = parsed
	}

	product := &models.Product{
		Category:    r.FormValue("category"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Cost:        cost,
	}
	if sid := r.FormValue("sellerId"); sid != "" {
		id, err := primitive.ObjectIDFromHex(sid)
		if err != nil {
			return nil, nil, err
		}
		product.SellerID = id
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return product, nil, nil
		}
		return nil, nil, err
	}
	return product, file, nil
}

// AddProduct lists a new product, uploading the attached image.
func (pc *ProductController) AddProduct(w http.ResponseWriter, r *http.Request) {
	product, image, err := parseProductForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product form")
		return
	}
	if image != nil {
		defer image.Close()
	}

	// Image uploads can outlast a single store round-trip.
	ctx, cancel := context.WithTimeout(r.Context(), 30*requestTimeout)
	defer cancel()

	var reader io.Reader
	if image != nil {
		reader = image
	}
	id, err := pc.service.AddProduct(ctx, product, reader)
	if err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id, "message": "Product added successfully"})
}

// UpdateProduct replaces a product's fields, optionally with a new image.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	product, image, err := parseProductForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product form")
		return
	}
	if image != nil {
		defer image.Close()
	}

	id, err := primitive.ObjectIDFromHex(r.FormValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed product id")
		return
	}
	product.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), 30*requestTimeout)
	defer cancel()

	var reader io.Reader
	if image != nil {
		reader = image
	}
	if err := pc.service.UpdateProduct(ctx, product, reader); err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

// DeleteProduct removes a product, its hosted image and any cart lines
// referencing it.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := pc.service.DeleteProduct(ctx, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// GetProducts lists the whole catalog.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := pc.service.ViewAll(ctx)
	if err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProductByID returns one product.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := pc.service.ViewByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// GetProductsBySeller lists one seller's products.
func (pc *ProductController) GetProductsBySeller(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := pc.service.ViewBySeller(ctx, mux.Vars(r)["sellerId"])
	if err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProductsByCategory lists products in one category.
func (pc *ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := pc.service.ViewByCategory(ctx, mux.Vars(r)["category"])
	if err != nil {
		respondServiceError(w, pc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}
