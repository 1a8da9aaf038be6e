package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"llcart/models"
	"llcart/repository"
)

// productRemover is the slice of ProductService the admin cascade
// needs: deleting a product also clears its image and cart lines.
type productRemover interface {
	DeleteProduct(ctx context.Context, productID string) error
}

// AdminService covers platform administration: seller approval,
// account removal with cascades, and aggregate sales metrics.
type AdminService struct {
	admins    repository.AdminRepository
	sellers   repository.SellerRepository
	buyers    repository.BuyerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	carts     repository.CartRepository
	addresses repository.AddressRepository
	remover   productRemover
	mailer    Mailer
}

func NewAdminService(
	admins repository.AdminRepository,
	sellers repository.SellerRepository,
	buyers repository.BuyerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	carts repository.CartRepository,
	addresses repository.AddressRepository,
	remover productRemover,
	mailer Mailer,
) *AdminService {
	return &AdminService{
		admins:    admins,
		sellers:   sellers,
		buyers:    buyers,
		products:  products,
		orders:    orders,
		carts:     carts,
		addresses: addresses,
		remover:   remover,
		mailer:    mailer,
	}
}

// Login checks admin credentials.
func (s *AdminService) Login(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}
	return admin, nil
}

// Register creates an admin credential record.
func (s *AdminService) Register(ctx context.Context, admin *models.Admin) error {
	if admin.Username == "" || admin.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}
	if _, err := s.admins.FindByUsername(ctx, admin.Username); err == nil {
		return fmt.Errorf("%w: admin username already exists", ErrAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.Password = string(hashed)

	_, err = s.admins.Insert(ctx, admin)
	return err
}

// AddSeller creates a seller directly in "approved", bypassing the
// pending queue.
func (s *AdminService) AddSeller(ctx context.Context, seller *models.Seller) error {
	if seller.Username == "" || seller.Email == "" || seller.Password == "" {
		return fmt.Errorf("%w: username, email and password are required", ErrInvalidArgument)
	}
	if _, err := s.sellers.FindByUsername(ctx, seller.Username); err == nil {
		return fmt.Errorf("%w: username already taken", ErrAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seller.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	seller.Password = string(hashed)
	seller.Status = models.SellerApproved

	_, err = s.sellers.Insert(ctx, seller)
	return err
}

func (s *AdminService) ViewSellers(ctx context.Context) ([]models.Seller, error) {
	return s.sellers.FindAll(ctx)
}

func (s *AdminService) ViewPendingSellers(ctx context.Context) ([]models.Seller, error) {
	return s.sellers.FindByStatus(ctx, models.SellerPending)
}

func (s *AdminService) ViewBuyers(ctx context.Context) ([]models.Buyer, error) {
	return s.buyers.FindAll(ctx)
}

// ApproveSeller moves a seller to "approved" and notifies them.
func (s *AdminService) ApproveSeller(ctx context.Context, sellerID string) error {
	return s.setSellerStatus(ctx, sellerID, models.SellerApproved,
		"Your LL-CART seller account has been approved. You can now log in and list products.")
}

// RejectSeller moves a seller to "rejected" and notifies them.
func (s *AdminService) RejectSeller(ctx context.Context, sellerID string) error {
	return s.setSellerStatus(ctx, sellerID, models.SellerRejected,
		"Your LL-CART seller application has been rejected.")
}

func (s *AdminService) setSellerStatus(ctx context.Context, sellerID, status, notice string) error {
	id, err := parseID(sellerID, "seller id")
	if err != nil {
		return err
	}
	seller, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err, "seller not found")
	}
	if err := s.sellers.UpdateStatus(ctx, id, status); err != nil {
		return mapNotFound(err, "seller not found")
	}
	return s.mailer.Send(ctx, models.EmailDetails{
		Recipient: seller.Email,
		Subject:   fmt.Sprintf("LL-CART seller account %s", status),
		MsgBody:   notice,
	})
}

// DeleteSeller removes a seller and cascades to their products, which
// in turn removes hosted images and referencing cart lines. Orders are
// durable history and stay.
func (s *AdminService) DeleteSeller(ctx context.Context, sellerID string) error {
	id, err := parseID(sellerID, "seller id")
	if err != nil {
		return err
	}
	if _, err := s.sellers.FindByID(ctx, id); err != nil {
		return mapNotFound(err, "seller not found")
	}

	products, err := s.products.FindBySeller(ctx, id)
	if err != nil {
		return err
	}
	for i := range products {
		if err := s.remover.DeleteProduct(ctx, products[i].ID.Hex()); err != nil {
			return err
		}
	}
	return s.sellers.DeleteByID(ctx, id)
}

// DeleteBuyer removes a buyer and cascades to their cart lines and
// addresses. Orders are durable history and stay.
func (s *AdminService) DeleteBuyer(ctx context.Context, buyerID string) error {
	id, err := parseID(buyerID, "buyer id")
	if err != nil {
		return err
	}
	if _, err := s.buyers.FindByID(ctx, id); err != nil {
		return mapNotFound(err, "buyer not found")
	}

	if err := s.carts.DeleteByBuyer(ctx, id); err != nil {
		return err
	}
	if err := s.addresses.DeleteByBuyer(ctx, id); err != nil {
		return err
	}
	return s.buyers.DeleteByID(ctx, id)
}

// Metrics returns the platform-wide dashboard totals.
func (s *AdminService) Metrics(ctx context.Context) (*models.AdminMetrics, error) {
	totalSellers, err := s.sellers.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBuyers, err := s.buyers.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminMetrics{
		TotalSellers:  totalSellers,
		TotalBuyers:   totalBuyers,
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
	}, nil
}

// SalesData returns the platform-wide time-bucketed sales rollup for
// the requested period ("daily" or "monthly").
func (s *AdminService) SalesData(ctx context.Context, period string) ([]models.SalesBucket, error) {
	since, format, err := salesWindow(period, time.Now())
	if err != nil {
		return nil, err
	}
	return s.orders.SalesSince(ctx, since, format)
}
