package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"llcart/models"
	"llcart/repository"
	"llcart/utils"
)

// SellerService handles seller registration, credentials and the
// seller-facing sales dashboard. New sellers start in "pending" and
// cannot log in until an admin approves them.
type SellerService struct {
	sellers    repository.SellerRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	mailer     Mailer
	appBaseURL string
}

func NewSellerService(sellers repository.SellerRepository, products repository.ProductRepository, orders repository.OrderRepository, mailer Mailer, appBaseURL string) *SellerService {
	return &SellerService{sellers: sellers, products: products, orders: orders, mailer: mailer, appBaseURL: appBaseURL}
}

// Register creates a pending seller awaiting admin approval.
func (s *SellerService) Register(ctx context.Context, seller *models.Seller) error {
	if seller.Username == "" || seller.Email == "" || seller.Password == "" {
		return fmt.Errorf("%w: username, email and password are required", ErrInvalidArgument)
	}

	if _, err := s.sellers.FindByUsername(ctx, seller.Username); err == nil {
		return fmt.Errorf("%w: username already taken", ErrAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if _, err := s.sellers.FindByEmail(ctx, seller.Email); err == nil {
		return fmt.Errorf("%w: seller with this email already exists", ErrAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seller.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	seller.Password = string(hashed)
	seller.Status = models.SellerPending

	_, err = s.sellers.Insert(ctx, seller)
	return err
}

// Login checks credentials; only approved sellers may log in.
func (s *SellerService) Login(ctx context.Context, username, password string) (*models.Seller, error) {
	seller, err := s.sellers.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}
	if seller.Status != models.SellerApproved {
		return nil, fmt.Errorf("%w: seller account is %s", ErrUnauthorized, seller.Status)
	}
	return seller, nil
}

func (s *SellerService) GetByID(ctx context.Context, sellerID string) (*models.Seller, error) {
	id, err := parseID(sellerID, "seller id")
	if err != nil {
		return nil, err
	}
	seller, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "seller not found")
	}
	seller.Password = ""
	seller.ResetToken = ""
	return seller, nil
}

// UpdateProfile updates the seller's contact fields; credentials and
// status are managed elsewhere.
func (s *SellerService) UpdateProfile(ctx context.Context, seller *models.Seller) error {
	if seller.ID.IsZero() {
		return fmt.Errorf("%w: seller id is required", ErrInvalidArgument)
	}
	return mapNotFound(s.sellers.UpdateProfile(ctx, seller), "seller not found")
}

// ForgotPassword issues a reset token and mails it to the seller.
func (s *SellerService) ForgotPassword(ctx context.Context, email string) error {
	seller, err := s.sellers.FindByEmail(ctx, email)
	if err != nil {
		return mapNotFound(err, "no seller with this email")
	}

	token := utils.GenerateSecureToken()
	if err := s.sellers.SetResetToken(ctx, seller.ID, token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/seller/reset-password?token=%s", s.appBaseURL, token)
	return s.mailer.Send(ctx, models.EmailDetails{
		Recipient: seller.Email,
		Subject:   "Reset your LL-CART seller password",
		MsgBody:   fmt.Sprintf("To reset your password, visit: %s", link),
	})
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *SellerService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new password are required", ErrInvalidArgument)
	}
	seller, err := s.sellers.FindByResetToken(ctx, token)
	if err != nil {
		return mapNotFound(err, "invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.sellers.UpdatePassword(ctx, seller.ID, string(hashed))
}

// Metrics returns the seller's dashboard totals.
func (s *SellerService) Metrics(ctx context.Context, sellerID string) (*models.SellerMetrics, error) {
	id, err := parseID(sellerID, "seller id")
	if err != nil {
		return nil, err
	}
	if _, err := s.sellers.FindByID(ctx, id); err != nil {
		return nil, mapNotFound(err, "seller not found")
	}

	totalProducts, err := s.products.CountBySeller(ctx, id)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.CountBySeller(ctx, id)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.orders.TotalRevenueBySeller(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.SellerMetrics{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
	}, nil
}

// SalesData returns the seller's time-bucketed sales rollup for the
// requested period ("daily" or "monthly").
func (s *SellerService) SalesData(ctx context.Context, sellerID, period string) ([]models.SalesBucket, error) {
	id, err := parseID(sellerID, "seller id")
	if err != nil {
		return nil, err
	}
	since, format, err := salesWindow(period, time.Now())
	if err != nil {
		return nil, err
	}
	return s.orders.SalesBySellerSince(ctx, id, since, format)
}

// salesWindow maps a rollup period onto its start time and bucket
// format: daily covers the last 30 days, monthly the last 12 months.
func salesWindow(period string, now time.Time) (time.Time, string, error) {
	switch period {
	case "", "daily":
		return now.AddDate(0, 0, -30), repository.DailyBucketFormat, nil
	case "monthly":
		return now.AddDate(-1, 0, 0), repository.MonthlyBucketFormat, nil
	default:
		return time.Time{}, "", fmt.Errorf("%w: unknown period %q", ErrInvalidArgument, period)
	}
}
