package services

import (
	"context"
	"fmt"
	"io"

	"llcart/models"
	"llcart/repository"
)

// ProductImageFolder is the media-host folder for product images.
const ProductImageFolder = "llcart/products"

// ProductService manages the catalog. Images are pushed to the media
// host; only the resulting URL and public id are stored.
type ProductService struct {
	products repository.ProductRepository
	sellers  repository.SellerRepository
	carts    repository.CartRepository
	uploader MediaUploader
}

func NewProductService(products repository.ProductRepository, sellers repository.SellerRepository, carts repository.CartRepository, uploader MediaUploader) *ProductService {
	return &ProductService{products: products, sellers: sellers, carts: carts, uploader: uploader}
}

// AddProduct lists a product for an existing seller, uploading the
// image first when one is provided.
func (s *ProductService) AddProduct(ctx context.Context, product *models.Product, image io.Reader) (string, error) {
	if product.Name == "" {
		return "", fmt.Errorf("%w: product name is required", ErrInvalidArgument)
	}
	if product.Cost < 0 {
		return "", fmt.Errorf("%w: cost must not be negative", ErrInvalidArgument)
	}
	if product.SellerID.IsZero() {
		return "", fmt.Errorf("%w: seller id is required", ErrInvalidArgument)
	}
	if _, err := s.sellers.FindByID(ctx, product.SellerID); err != nil {
		return "", mapNotFound(err, "seller not found")
	}

	if image != nil {
		url, publicID, err := s.uploader.Upload(ctx, image, ProductImageFolder)
		if err != nil {
			return "", fmt.Errorf("failed to upload product image: %w", err)
		}
		product.ImageURL = url
		product.ImagePublicID = publicID
	}

	id, err := s.products.Insert(ctx, product)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// UpdateProduct replaces the product's listed fields. Without a new
// image the existing hosted image is kept; with one, the old image is
// replaced on the media host as well.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product, image io.Reader) error {
	if product.ID.IsZero() {
		return fmt.Errorf("%w: product id is required", ErrInvalidArgument)
	}
	if product.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", ErrInvalidArgument)
	}

	existing, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return mapNotFound(err, "product not found")
	}

	if image != nil {
		url, publicID, err := s.uploader.Upload(ctx, image, ProductImageFolder)
		if err != nil {
			return fmt.Errorf("failed to upload product image: %w", err)
		}
		if existing.ImagePublicID != "" {
			// Old image is unreferenced once the update lands.
			_ = s.uploader.Delete(ctx, existing.ImagePublicID)
		}
		product.ImageURL = url
		product.ImagePublicID = publicID
	} else {
		product.ImageURL = existing.ImageURL
		product.ImagePublicID = existing.ImagePublicID
	}

	return mapNotFound(s.products.Update(ctx, product), "product not found")
}

// DeleteProduct removes a product together with its hosted image and
// any cart lines that reference it.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := parseID(productID, "product id")
	if err != nil {
		return err
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err, "product not found")
	}

	if err := s.carts.DeleteByProduct(ctx, id); err != nil {
		return err
	}
	if product.ImagePublicID != "" {
		_ = s.uploader.Delete(ctx, product.ImagePublicID)
	}
	return s.products.DeleteByID(ctx, id)
}

func (s *ProductService) ViewAll(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) ViewByID(ctx context.Context, productID string) (*models.Product, error) {
	id, err := parseID(productID, "product id")
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "product not found")
	}
	return product, nil
}

func (s *ProductService) ViewBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	id, err := parseID(sellerID, "seller id")
	if err != nil {
		return nil, err
	}
	return s.products.FindBySeller(ctx, id)
}

func (s *ProductService) ViewByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidArgument)
	}
	return s.products.FindByCategory(ctx, category)
}
