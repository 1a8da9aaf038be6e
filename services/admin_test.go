package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"llcart/models"
	"llcart/repository"
	"llcart/services"
)

type fakeProductRemover struct {
	deleted []string
}

func (f *fakeProductRemover) DeleteProduct(_ context.Context, productID string) error {
	f.deleted = append(f.deleted, productID)
	return nil
}

type adminFixture struct {
	admins    *MockAdminRepo
	sellers   *MockSellerRepo
	buyers    *MockBuyerRepo
	products  *MockProductRepo
	orders    *MockOrderRepo
	carts     *MockCartRepo
	addresses *MockAddressRepo
	remover   *fakeProductRemover
	mailer    *MockMailer
	service   *services.AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	f := &adminFixture{
		admins:    new(MockAdminRepo),
		sellers:   new(MockSellerRepo),
		buyers:    new(MockBuyerRepo),
		products:  new(MockProductRepo),
		orders:    new(MockOrderRepo),
		carts:     new(MockCartRepo),
		addresses: new(MockAddressRepo),
		remover:   &fakeProductRemover{},
		mailer:    new(MockMailer),
	}
	f.service = services.NewAdminService(f.admins, f.sellers, f.buyers, f.products, f.orders, f.carts, f.addresses, f.remover, f.mailer)
	return f
}

func TestAdminLogin(t *testing.T) {
	f := newAdminFixture(t)
	admin := &models.Admin{ID: primitive.NewObjectID(), Username: "root", Password: hashPassword(t, "s3cret")}
	f.admins.On("FindByUsername", mock.Anything, "root").Return(admin, nil)

	got, err := f.service.Login(context.Background(), "root", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	_, err = f.service.Login(context.Background(), "root", "wrong")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestAdminRegisterHashesPassword(t *testing.T) {
	f := newAdminFixture(t)
	admin := &models.Admin{Username: "root", Password: "s3cret"}
	f.admins.On("FindByUsername", mock.Anything, "root").Return(nil, repository.ErrNotFound).Once()
	f.admins.On("Insert", mock.Anything, admin).Return(primitive.NewObjectID(), nil).Once()

	require.NoError(t, f.service.Register(context.Background(), admin))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret")))
}

func TestAdminAddSellerIsApprovedImmediately(t *testing.T) {
	f := newAdminFixture(t)
	seller := &models.Seller{Username: "coffeehouse", Email: "owner@example.com", Password: "pw"}
	f.sellers.On("FindByUsername", mock.Anything, seller.Username).Return(nil, repository.ErrNotFound).Once()
	f.sellers.On("Insert", mock.Anything, seller).Return(primitive.NewObjectID(), nil).Once()

	require.NoError(t, f.service.AddSeller(context.Background(), seller))
	assert.Equal(t, models.SellerApproved, seller.Status)
}

func TestApproveSellerNotifiesByMail(t *testing.T) {
	f := newAdminFixture(t)
	seller := &models.Seller{ID: primitive.NewObjectID(), Email: "owner@example.com", Status: models.SellerPending}
	f.sellers.On("FindByID", mock.Anything, seller.ID).Return(seller, nil).Once()
	f.sellers.On("UpdateStatus", mock.Anything, seller.ID, models.SellerApproved).Return(nil).Once()

	var sent models.EmailDetails
	f.mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(models.EmailDetails)
	}).Return(nil).Once()

	require.NoError(t, f.service.ApproveSeller(context.Background(), seller.ID.Hex()))
	assert.Equal(t, seller.Email, sent.Recipient)
	assert.Contains(t, sent.Subject, models.SellerApproved)
	f.sellers.AssertExpectations(t)
}

func TestRejectSellerUnknownSeller(t *testing.T) {
	f := newAdminFixture(t)
	id := primitive.NewObjectID()
	f.sellers.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

	err := f.service.RejectSeller(context.Background(), id.Hex())
	assert.ErrorIs(t, err, services.ErrNotFound)
	f.sellers.AssertNotCalled(t, "UpdateStatus")
}

func TestDeleteSellerCascadesToProducts(t *testing.T) {
	f := newAdminFixture(t)
	seller := &models.Seller{ID: primitive.NewObjectID()}
	productA := models.Product{ID: primitive.NewObjectID(), SellerID: seller.ID}
	productB := models.Product{ID: primitive.NewObjectID(), SellerID: seller.ID}

	f.sellers.On("FindByID", mock.Anything, seller.ID).Return(seller, nil).Once()
	f.products.On("FindBySeller", mock.Anything, seller.ID).Return([]models.Product{productA, productB}, nil).Once()
	f.sellers.On("DeleteByID", mock.Anything, seller.ID).Return(nil).Once()

	require.NoError(t, f.service.DeleteSeller(context.Background(), seller.ID.Hex()))
	assert.ElementsMatch(t, []string{productA.ID.Hex(), productB.ID.Hex()}, f.remover.deleted)
	f.sellers.AssertExpectations(t)
}

func TestDeleteBuyerCascadesToCartAndAddresses(t *testing.T) {
	f := newAdminFixture(t)
	buyer := &models.Buyer{ID: primitive.NewObjectID()}

	f.buyers.On("FindByID", mock.Anything, buyer.ID).Return(buyer, nil).Once()
	f.carts.On("DeleteByBuyer", mock.Anything, buyer.ID).Return(nil).Once()
	f.addresses.On("DeleteByBuyer", mock.Anything, buyer.ID).Return(nil).Once()
	f.buyers.On("DeleteByID", mock.Anything, buyer.ID).Return(nil).Once()

	require.NoError(t, f.service.DeleteBuyer(context.Background(), buyer.ID.Hex()))

	// Orders are history and must not be touched by the cascade.
	f.orders.AssertNotCalled(t, "Insert")
	f.carts.AssertExpectations(t)
	f.addresses.AssertExpectations(t)
	f.buyers.AssertExpectations(t)
}

func TestAdminMetrics(t *testing.T) {
	f := newAdminFixture(t)
	f.sellers.On("Count", mock.Anything).Return(int64(4), nil).Once()
	f.buyers.On("Count", mock.Anything).Return(int64(25), nil).Once()
	f.products.On("Count", mock.Anything).Return(int64(60), nil).Once()
	f.orders.On("Count", mock.Anything).Return(int64(110), nil).Once()
	f.orders.On("TotalRevenue", mock.Anything).Return(9876.5, nil).Once()

	metrics, err := f.service.Metrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &models.AdminMetrics{
		TotalSellers:  4,
		TotalBuyers:   25,
		TotalProducts: 60,
		TotalOrders:   110,
		TotalRevenue:  9876.5,
	}, metrics)
}

func TestAdminSalesDataPeriods(t *testing.T) {
	f := newAdminFixture(t)
	buckets := []models.SalesBucket{{Period: "2026-08-27", OrderCount: 2, Revenue: 40}}
	f.orders.On("SalesSince", mock.Anything, mock.Anything, repository.DailyBucketFormat).Return(buckets, nil).Once()

	got, err := f.service.SalesData(context.Background(), "daily")
	require.NoError(t, err)
	assert.Equal(t, buckets, got)

	_, err = f.service.SalesData(context.Background(), "weekly")
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}
