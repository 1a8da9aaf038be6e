package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"llcart/middleware"
	"llcart/models"
	"llcart/utils"
)

type BuyerManager interface {
	Register(ctx context.Context, buyer *models.Buyer) error
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (*models.Buyer, error)
	GetProfile(ctx context.Context, buyerID string) (*models.Buyer, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// BuyerController handles buyer account requests
type BuyerController struct {
	service BuyerManager
	logger  *slog.Logger
}

func NewBuyerController(service BuyerManager, logger *slog.Logger) *BuyerController {
	return &BuyerController{service: service, logger: logger}
}

// Register creates a buyer and sends a verification email.
func (bc *BuyerController) Register(w http.ResponseWriter, r *http.Request) {
	var buyer models.Buyer
	if err := json.NewDecoder(r.Body).Decode(&buyer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := bc.service.Register(ctx, &buyer); err != nil {
		respondServiceError(w, bc.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Buyer registered successfully. Please check your email to verify your account.",
	})
}

// VerifyEmail consumes the token from the verification link.
func (bc *BuyerController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := bc.service.VerifyEmail(ctx, token); err != nil {
		respondServiceError(w, bc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Email verified successfully. You can now log in."})
}

// Login authenticates a buyer and returns a JWT.
func (bc *BuyerController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	buyer, err := bc.service.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		respondServiceError(w, bc.logger, err)
		return
	}

	token, err := utils.GenerateJWT(buyer.ID.Hex(), buyer.Email, "buyer")
	if err != nil {
		bc.logger.Error("failed to generate token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetProfile returns the authenticated buyer's profile.
func (bc *BuyerController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not parse user from context")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	buyer, err := bc.service.GetProfile(ctx, claims.ID)
	if err != nil {
		respondServiceError(w, bc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, buyer)
}

// ForgotPassword mails a reset link to the buyer.
func (bc *BuyerController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := bc.service.ForgotPassword(ctx, req.Email); err != nil {
		respondServiceError(w, bc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token and stores the new password.
func (bc *BuyerController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := bc.service.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		respondServiceError(w, bc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
