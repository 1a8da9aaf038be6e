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

func newSellerService(sellers *MockSellerRepo, products *MockProductRepo, orders *MockOrderRepo) *services.SellerService {
	return services.NewSellerService(sellers, products, orders, new(MockMailer), testBaseURL)
}

func TestSellerRegisterStartsPending(t *testing.T) {
	sellers := new(MockSellerRepo)
	service := newSellerService(sellers, new(MockProductRepo), new(MockOrderRepo))

	seller := &models.Seller{Username: "coffeehouse", Email: "owner@example.com", Password: "s3cret"}
	sellers.On("FindByUsername", mock.Anything, seller.Username).Return(nil, repository.ErrNotFound).Once()
	sellers.On("FindByEmail", mock.Anything, seller.Email).Return(nil, repository.ErrNotFound).Once()
	sellers.On("Insert", mock.Anything, seller).Return(primitive.NewObjectID(), nil).Once()

	require.NoError(t, service.Register(context.Background(), seller))

	assert.Equal(t, models.SellerPending, seller.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte("s3cret")))
	sellers.AssertExpectations(t)
}

func TestSellerRegisterDuplicateUsername(t *testing.T) {
	sellers := new(MockSellerRepo)
	service := newSellerService(sellers, new(MockProductRepo), new(MockOrderRepo))

	taken := &models.Seller{ID: primitive.NewObjectID(), Username: "coffeehouse"}
	sellers.On("FindByUsername", mock.Anything, "coffeehouse").Return(taken, nil).Once()

	err := service.Register(context.Background(), &models.Seller{Username: "coffeehouse", Email: "x@example.com", Password: "pw"})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
	sellers.AssertNotCalled(t, "Insert")
}

func TestSellerLoginStatusGating(t *testing.T) {
	hash := hashPassword(t, "s3cret")

	cases := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{"approved seller logs in", models.SellerApproved, false},
		{"pending seller is rejected", models.SellerPending, true},
		{"rejected seller is rejected", models.SellerRejected, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seller := &models.Seller{
				ID:       primitive.NewObjectID(),
				Username: "coffeehouse",
				Password: hash,
				Status:   tc.status,
			}
			sellers := new(MockSellerRepo)
			sellers.On("FindByUsername", mock.Anything, seller.Username).Return(seller, nil).Once()
			service := newSellerService(sellers, new(MockProductRepo), new(MockOrderRepo))

			got, err := service.Login(context.Background(), seller.Username, "s3cret")
			if tc.wantErr {
				assert.ErrorIs(t, err, services.ErrUnauthorized)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, seller.ID, got.ID)
		})
	}
}

func TestSellerLoginWrongPassword(t *testing.T) {
	seller := &models.Seller{
		ID:       primitive.NewObjectID(),
		Username: "coffeehouse",
		Password: hashPassword(t, "s3cret"),
		Status:   models.SellerApproved,
	}
	sellers := new(MockSellerRepo)
	sellers.On("FindByUsername", mock.Anything, seller.Username).Return(seller, nil).Once()
	service := newSellerService(sellers, new(MockProductRepo), new(MockOrderRepo))

	_, err := service.Login(context.Background(), seller.Username, "wrong")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestSellerMetrics(t *testing.T) {
	sellerID := primitive.NewObjectID()
	sellers := new(MockSellerRepo)
	products := new(MockProductRepo)
	orders := new(MockOrderRepo)

	sellers.On("FindByID", mock.Anything, sellerID).Return(&models.Seller{ID: sellerID}, nil).Once()
	products.On("CountBySeller", mock.Anything, sellerID).Return(int64(12), nil).Once()
	orders.On("CountBySeller", mock.Anything, sellerID).Return(int64(40), nil).Once()
	orders.On("TotalRevenueBySeller", mock.Anything, sellerID).Return(1234.56, nil).Once()

	service := newSellerService(sellers, products, orders)
	metrics, err := service.Metrics(context.Background(), sellerID.Hex())
	require.NoError(t, err)

	assert.Equal(t, int64(12), metrics.TotalProducts)
	assert.Equal(t, int64(40), metrics.TotalOrders)
	assert.Equal(t, 1234.56, metrics.TotalRevenue)
}

func TestSellerMetricsUnknownSeller(t *testing.T) {
	sellerID := primitive.NewObjectID()
	sellers := new(MockSellerRepo)
	sellers.On("FindByID", mock.Anything, sellerID).Return(nil, repository.ErrNotFound).Once()

	service := newSellerService(sellers, new(MockProductRepo), new(MockOrderRepo))
	_, err := service.Metrics(context.Background(), sellerID.Hex())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSellerSalesDataPeriods(t *testing.T) {
	sellerID := primitive.NewObjectID()
	buckets := []models.SalesBucket{{Period: "2026-08", OrderCount: 3, Revenue: 99}}

	cases := []struct {
		name       string
		period     string
		wantFormat string
	}{
		{"default is daily", "", repository.DailyBucketFormat},
		{"daily", "daily", repository.DailyBucketFormat},
		{"monthly", "monthly", repository.MonthlyBucketFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := new(MockOrderRepo)
			orders.On("SalesBySellerSince", mock.Anything, sellerID, mock.Anything, tc.wantFormat).
				Return(buckets, nil).Once()

			service := newSellerService(new(MockSellerRepo), new(MockProductRepo), orders)
			got, err := service.SalesData(context.Background(), sellerID.Hex(), tc.period)
			require.NoError(t, err)
			assert.Equal(t, buckets, got)
			orders.AssertExpectations(t)
		})
	}
}

func TestSellerSalesDataUnknownPeriod(t *testing.T) {
	orders := new(MockOrderRepo)
	service := newSellerService(new(MockSellerRepo), new(MockProductRepo), orders)

	_, err := service.SalesData(context.Background(), primitive.NewObjectID().Hex(), "hourly")
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
	orders.AssertNotCalled(t, "SalesBySellerSince")
}
