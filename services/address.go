package services

import (
	"context"
	"fmt"

	"llcart/models"
	"llcart/repository"
)

// AddressService manages the delivery addresses owned by a buyer.
type AddressService struct {
	addresses repository.AddressRepository
	buyers    repository.BuyerRepository
}

func NewAddressService(addresses repository.AddressRepository, buyers repository.BuyerRepository) *AddressService {
	return &AddressService{addresses: addresses, buyers: buyers}
}

// AddAddress stores an address for an existing buyer.
func (s *AddressService) AddAddress(ctx context.Context, address *models.Address, buyerID string) (*models.Address, error) {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	if address.Street == "" || address.City == "" {
		return nil, fmt.Errorf("%w: street and city are required", ErrInvalidArgument)
	}
	if _, err := s.buyers.FindByID(ctx, bid); err != nil {
		return nil, mapNotFound(err, "buyer not found")
	}

	address.BuyerID = bid
	id, err := s.addresses.Insert(ctx, address)
	if err != nil {
		return nil, err
	}
	address.ID = id
	return address, nil
}

func (s *AddressService) GetAddressesByBuyer(ctx context.Context, buyerID string) ([]models.Address, error) {
	bid, err := parseID(buyerID, "buyer id")
	if err != nil {
		return nil, err
	}
	return s.addresses.FindByBuyer(ctx, bid)
}

// DeleteAddress removes one address by id. Deleting an absent address
// is a no-op.
func (s *AddressService) DeleteAddress(ctx context.Context, addressID string) error {
	id, err := parseID(addressID, "address id")
	if err != nil {
		return err
	}
	return s.addresses.DeleteByID(ctx, id)
}
