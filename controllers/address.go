package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"llcart/models"
)

type AddressManager interface {
	AddAddress(ctx context.Context, address *models.Address, buyerID string) (*models.Address, error)
	GetAddressesByBuyer(ctx context.Context, buyerID string) ([]models.Address, error)
	DeleteAddress(ctx context.Context, addressID string) error
}

// AddressController handles buyer address requests
type AddressController struct {
	service AddressManager
	logger  *slog.Logger
}

func NewAddressController(service AddressManager, logger *slog.Logger) *AddressController {
	return &AddressController{service: service, logger: logger}
}

// AddAddress stores a delivery address for a buyer.
func (ac *AddressController) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuyerID     string `json:"buyerId"`
		HouseNumber string `json:"houseNumber"`
		Street      string `json:"street"`
		City        string `json:"city"`
		State       string `json:"state"`
		Pincode     string `json:"pincode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	address := models.Address{
		HouseNumber: req.HouseNumber,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
	}
	saved, err := ac.service.AddAddress(ctx, &address, req.BuyerID)
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// GetAddressesByBuyer lists a buyer's delivery addresses.
func (ac *AddressController) GetAddressesByBuyer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	addresses, err := ac.service.GetAddressesByBuyer(ctx, mux.Vars(r)["buyerId"])
	if err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, addresses)
}

// DeleteAddress removes one address.
func (ac *AddressController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ac.service.DeleteAddress(ctx, mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, ac.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Address deleted successfully"})
}
