package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"llcart/models"
	"llcart/repository"
	"llcart/utils"
)

// BuyerService handles buyer registration, verification and
// credential flows. Passwords are only ever stored as bcrypt hashes.
type BuyerService struct {
	buyers repository.BuyerRepository
	mailer Mailer
	// appBaseURL prefixes the links embedded in verification and
	// password-reset mails, e.g. "http://localhost:8000".
	appBaseURL string
}

func NewBuyerService(buyers repository.BuyerRepository, mailer Mailer, appBaseURL string) *BuyerService {
	return &BuyerService{buyers: buyers, mailer: mailer, appBaseURL: appBaseURL}
}

// Register creates an unverified buyer and mails a verification link.
func (s *BuyerService) Register(ctx context.Context, buyer *models.Buyer) error {
	if buyer.Email == "" || buyer.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidArgument)
	}

	_, err := s.buyers.FindByEmail(ctx, buyer.Email)
	if err == nil {
		return fmt.Errorf("%w: buyer with this email already exists", ErrAlreadyExists)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(buyer.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	buyer.Password = string(hashed)
	buyer.IsVerified = false
	buyer.VerificationToken = utils.GenerateSecureToken()

	if _, err := s.buyers.Insert(ctx, buyer); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/buyer/verify?token=%s", s.appBaseURL, buyer.VerificationToken)
	return s.mailer.Send(ctx, models.EmailDetails{
		Recipient: buyer.Email,
		Subject:   "Verify your LL-CART account",
		MsgBody:   fmt.Sprintf("Welcome to LL-CART! Please verify your email by visiting: %s", link),
	})
}

// VerifyEmail marks the buyer holding the token as verified.
func (s *BuyerService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: verification token missing", ErrInvalidArgument)
	}
	buyer, err := s.buyers.FindByVerificationToken(ctx, token)
	if err != nil {
		return mapNotFound(err, "invalid or already used verification token")
	}
	return s.buyers.MarkVerified(ctx, buyer.ID)
}

// Login checks credentials and returns the buyer on success.
func (s *BuyerService) Login(ctx context.Context, email, password string) (*models.Buyer, error) {
	buyer, err := s.buyers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
		}
		return nil, err
	}
	if !buyer.IsVerified {
		return nil, fmt.Errorf("%w: email not verified", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(buyer.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}
	return buyer, nil
}

// GetProfile returns the buyer without credential fields.
func (s *BuyerService) GetProfile(ctx context.Context, buyerID string) (*models.Buyer, error) {
	id, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	buyer, err := s.buyers.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "buyer not found")
	}
	buyer.Password = ""
	buyer.VerificationToken = ""
	buyer.ResetToken = ""
	return buyer, nil
}

// ForgotPassword issues a reset token and mails it to the buyer.
func (s *BuyerService) ForgotPassword(ctx context.Context, email string) error {
	buyer, err := s.buyers.FindByEmail(ctx, email)
	if err != nil {
		return mapNotFound(err, "no buyer with this email")
	}

	token := utils.GenerateSecureToken()
	if err := s.buyers.SetResetToken(ctx, buyer.ID, token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/buyer/reset-password?token=%s", s.appBaseURL, token)
	return s.mailer.Send(ctx, models.EmailDetails{
		Recipient: buyer.Email,
		Subject:   "Reset your LL-CART password",
		MsgBody:   fmt.Sprintf("To reset your password, visit: %s", link),
	})
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *BuyerService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new password are required", ErrInvalidArgument)
	}
	buyer, err := s.buyers.FindByResetToken(ctx, token)
	if err != nil {
		return mapNotFound(err, "invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.buyers.UpdatePassword(ctx, buyer.ID, string(hashed))
}
