package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"llcart/models"
	"llcart/repository"
)

// PlaceholderImageURL is substituted for products with no hosted image.
const PlaceholderImageURL = "https://placehold.co/300x200?text=No+Image"

// CartService maintains cart lines: one line per (buyer, product) pair,
// quantity always positive. Duplicate suppression is delegated to the
// store's atomic increment-or-insert so concurrent adds cannot race.
type CartService struct {
	carts    repository.CartRepository
	buyers   repository.BuyerRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, buyers repository.BuyerRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, buyers: buyers, products: products}
}

// AddToCart adds quantity of a product to a buyer's cart. If the buyer
// already has a line for the product, its quantity is incremented
// instead of a second line being created.
func (s *CartService) AddToCart(ctx context.Context, buyerID, productID string, quantity int) (*models.CartDTO, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	pid, err := parseID(productID, "product id")
	if err != nil {
		return nil, err
	}

	if _, err := s.buyers.FindByID(ctx, bid); err != nil {
		return nil, mapNotFound(err, "buyer not found")
	}
	product, err := s.products.FindByID(ctx, pid)
	if err != nil {
		return nil, mapNotFound(err, "product not found")
	}

	line, err := s.carts.Upsert(ctx, bid, pid, quantity)
	if err != nil {
		return nil, err
	}
	return cartLineDTO(line, product), nil
}

// GetCartItems returns every line in the buyer's cart with product
// detail resolved. An empty cart yields an empty list, not an error.
func (s *CartService) GetCartItems(ctx context.Context, buyerID string) ([]models.CartDTO, error) {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}

	lines, err := s.carts.FindByBuyer(ctx, bid)
	if err != nil {
		return nil, err
	}

	items := make([]models.CartDTO, 0, len(lines))
	for i := range lines {
		product, err := s.products.FindByID(ctx, lines[i].ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Product was deleted after the line was created;
				// the line is stale and not worth surfacing.
				continue
			}
			return nil, err
		}
		items = append(items, *cartLineDTO(&lines[i], product))
	}
	return items, nil
}

// GetCartCount returns the number of lines in the buyer's cart, not the
// sum of quantities.
func (s *CartService) GetCartCount(ctx context.Context, buyerID string) (int64, error) {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return 0, err
	}
	return s.carts.CountByBuyer(ctx, bid)
}

// RemoveCartItem deletes one line by its own id. Removing an absent
// line succeeds, so clients can safely retry.
func (s *CartService) RemoveCartItem(ctx context.Context, cartID string) error {
	id, err := parseID(cartID, "cart id")
	if err != nil {
		return err
	}
	return s.carts.DeleteByID(ctx, id)
}

// ClearCart deletes every line for the buyer. Clearing an already-empty
// cart succeeds.
func (s *CartService) ClearCart(ctx context.Context, buyerID string) error {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return err
	}
	return s.carts.DeleteByBuyer(ctx, bid)
}

// UpdateQuantity sets the quantity of the line for (buyer, product).
// The line must already exist; no write happens otherwise.
func (s *CartService) UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) (*models.CartDTO, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	pid, err := parseID(productID, "product id")
	if err != nil {
		return nil, err
	}

	line, err := s.carts.SetQuantity(ctx, bid, pid, quantity)
	if err != nil {
		return nil, mapNotFound(err, "cart item not found")
	}
	product, err := s.products.FindByID(ctx, pid)
	if err != nil {
		return nil, mapNotFound(err, "product not found")
	}
	return cartLineDTO(line, product), nil
}

func cartLineDTO(line *models.Cart, product *models.Product) *models.CartDTO {
	imageURL := strings.TrimSpace(product.ImageURL)
	if imageURL == "" {
		imageURL = PlaceholderImageURL
	}

	dto := &models.CartDTO{
		ID:       line.ID.Hex(),
		Quantity: line.Quantity,
		Product: models.ProductDTO{
			ID:          product.ID.Hex(),
			Name:        product.Name,
			Category:    product.Category,
			Description: product.Description,
			Cost:        product.Cost,
			ImageURL:    imageURL,
		},
	}
	if !product.SellerID.IsZero() {
		dto.Product.SellerID = product.SellerID.Hex()
	}
	return dto
}

func parseID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed %s", ErrInvalidArgument, what)
	}
	return oid, nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return err
}
