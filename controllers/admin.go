package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"llcart/models"
	"llcart/utils"
)

type AdminManager interface {
	Login(ctx context.Context, username, password string) (*models.Admin, error)
	Register(ctx context.Context, admin *models.Admin) error
	AddSeller(ctx context.Context, seller *models.Seller) error
	ViewSellers(ctx context.Context) ([]models.Seller, error)
	ViewPendingSellers(ctx context.Context) ([]models.Seller, error)
	ViewBuyers(ctx context.Context) ([]models.Buyer, error)
	ApproveSeller(ctx context.Context, sellerID string) error
	RejectSeller(ctx context.Context, sellerID string) error
	DeleteSeller(ctx context.Context, sellerID string) error
	DeleteBuyer(ctx context.Context, buyerID string) error
	Metrics(ctx context.Context) (*models.AdminMetrics, error)
	SalesData(ctx context.Context, period string) ([]models.SalesBucket, error)
}

// AdminController handles platform administration requests
type AdminController struct {
	service AdminManager
	logger  *slog.Logger
}

func NewAdminController(service AdminManager, logger *slog.Logger) *AdminController {
	return &AdminController{service: service, logger: logger}
}

// Login authenticates an admin and returns a JWT.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
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

	admin, err := ac.service.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Username, "admin")
	if err != nil {
		ac.logger.Error("failed to generate token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Register creates an admin credential record.
func (ac *AdminController) Register(w http.ResponseWriter, r *http.Request) {
	var admin models.Admin
	if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.Register(ctx, &admin); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

// AddSeller creates an already-approved seller.
func (ac *AdminController) AddSeller(w http.ResponseWriter, r *http.Request) {
	var seller models.Seller
	if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.AddSeller(ctx, &seller); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Seller added successfully"})
}

// ViewSellers lists every seller.
func (ac *AdminController) ViewSellers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sellers, err := ac.service.ViewSellers(ctx)
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, sellers)
}

// ViewPendingSellers lists sellers awaiting approval.
func (ac *AdminController) ViewPendingSellers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sellers, err := ac.service.ViewPendingSellers(ctx)
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, sellers)
}

// ViewBuyers lists every buyer.
func (ac *AdminController) ViewBuyers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	buyers, err := ac.service.ViewBuyers(ctx)
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, buyers)
}

// ApproveSeller moves a pending seller to approved.
func (ac *AdminController) ApproveSeller(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.ApproveSeller(ctx, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Seller approved successfully"})
}

// RejectSeller moves a pending seller to rejected.
func (ac *AdminController) RejectSeller(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.RejectSeller(ctx, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Seller rejected"})
}

// DeleteSeller removes a seller and cascades to their products.
func (ac *AdminController) DeleteSeller(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.DeleteSeller(ctx, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Seller deleted successfully"})
}

// DeleteBuyer removes a buyer and cascades to their carts and addresses.
func (ac *AdminController) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.DeleteBuyer(ctx, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Buyer deleted successfully"})
}

// Metrics returns the platform-wide dashboard totals.
func (ac *AdminController) Metrics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	metrics, err := ac.service.Metrics(ctx)
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// SalesData returns the platform-wide daily or monthly sales rollup.
func (ac *AdminController) SalesData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	buckets, err := ac.service.SalesData(ctx, r.URL.Query().Get("period"))
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, buckets)
}
