package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"llcart/models"
	"llcart/utils"
)

type SellerManager interface {
	Register(ctx context.Context, seller *models.Seller) error
	Login(ctx context.Context, username, password string) (*models.Seller, error)
	GetByID(ctx context.Context, sellerID string) (*models.Seller, error)
	UpdateProfile(ctx context.Context, seller *models.Seller) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Metrics(ctx context.Context, sellerID string) (*models.SellerMetrics, error)
	SalesData(ctx context.Context, sellerID, period string) ([]models.SalesBucket, error)
}

// SellerController handles seller account and dashboard requests
type SellerController struct {
	service SellerManager
	logger  *slog.Logger
}

func NewSellerController(service SellerManager, logger *slog.Logger) *SellerController {
	return &SellerController{service: service, logger: logger}
}

// Register creates a pending seller awaiting admin approval.
func (sc *SellerController) Register(w http.ResponseWriter, r *http.Request) {
	var seller models.Seller
	if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := sc.service.Register(ctx, &seller); err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Seller registered successfully. Your account is pending admin approval.",
	})
}

// Login authenticates an approved seller and returns a JWT.
func (sc *SellerController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	seller, err := sc.service.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}

	token, err := utils.GenerateJWT(seller.ID.Hex(), seller.Email, "seller")
	if err != nil {
		sc.logger.Error("failed to generate token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetByID returns a seller's public profile.
func (sc *SellerController) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	seller, err := sc.service.GetByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, seller)
}

// UpdateProfile updates the seller's contact details.
func (sc *SellerController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Mobile string `json:"mobile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed seller id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	seller := models.Seller{ID: id, Name: req.Name, Email: req.Email, Mobile: req.Mobile}
	if err := sc.service.UpdateProfile(ctx, &seller); err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Seller profile updated successfully"})
}

// ForgotPassword mails a reset link to the seller.
func (sc *SellerController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := sc.service.ForgotPassword(ctx, req.Email); err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token and stores the new password.
func (sc *SellerController) ResetPassword(w http.ResponseWriter, r *http.Request) {
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

	if err := sc.service.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

// Metrics returns the seller's dashboard totals.
func (sc *SellerController) Metrics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	metrics, err := sc.service.Metrics(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// SalesData returns the seller's daily or monthly sales rollup.
func (sc *SellerController) SalesData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	buckets, err := sc.service.SalesData(ctx, mux.Vars(r)["id"], r.URL.Query().Get("period"))
	if err != nil {
		respondServiceError(w, sc.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, buckets)
}
