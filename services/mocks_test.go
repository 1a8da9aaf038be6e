package services_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"llcart/models"
)

type MockBuyerRepo struct {
	mock.Mock
}

func (m *MockBuyerRepo) Insert(ctx context.Context, buyer *models.Buyer) (primitive.ObjectID, error) {
	args := m.Called(ctx, buyer)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockBuyerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Buyer, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*models.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBuyerRepo) FindByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	args := m.Called(ctx, email)
	if b, ok := args.Get(0).(*models.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBuyerRepo) FindByVerificationToken(ctx context.Context, token string) (*models.Buyer, error) {
	args := m.Called(ctx, token)
	if b, ok := args.Get(0).(*models.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBuyerRepo) FindByResetToken(ctx context.Context, token string) (*models.Buyer, error) {
	args := m.Called(ctx, token)
	if b, ok := args.Get(0).(*models.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBuyerRepo) FindAll(ctx context.Context) ([]models.Buyer, error) {
	args := m.Called(ctx)
	if b, ok := args.Get(0).([]models.Buyer); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBuyerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBuyerRepo) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBuyerRepo) SetResetToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *MockBuyerRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockBuyerRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	args := m.Called(ctx, category)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, sellerID)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepo) CountBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSellerRepo struct {
	mock.Mock
}

func (m *MockSellerRepo) Insert(ctx context.Context, seller *models.Seller) (primitive.ObjectID, error) {
	args := m.Called(ctx, seller)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockSellerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Seller, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*models.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSellerRepo) FindByUsername(ctx context.Context, username string) (*models.Seller, error) {
	args := m.Called(ctx, username)
	if s, ok := args.Get(0).(*models.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSellerRepo) FindByEmail(ctx context.Context, email string) (*models.Seller, error) {
	args := m.Called(ctx, email)
	if s, ok := args.Get(0).(*models.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSellerRepo) FindByResetToken(ctx context.Context, token string) (*models.Seller, error) {
	args := m.Called(ctx, token)
	if s, ok := args.Get(0).(*models.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSellerRepo) FindByStatus(ctx context.Context, status string) ([]models.Seller, error) {
	args := m.Called(ctx, status)
	if s, ok := args.Get(0).([]models.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSellerRepo) FindAll(ctx context.Context) ([]models.Seller, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]models.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSellerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSellerRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockSellerRepo) UpdateProfile(ctx context.Context, seller *models.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepo) SetResetToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *MockSellerRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockSellerRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockOrderRepo) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, buyerID)
	if o, ok := args.Get(0).([]models.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) FindBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, sellerID)
	if o, ok := args.Get(0).([]models.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	args := m.Called(ctx, paymentID)
	if o, ok := args.Get(0).(*models.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepo) CountBySeller(ctx context.Context, sellerID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepo) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepo) TotalRevenueBySeller(ctx context.Context, sellerID primitive.ObjectID) (float64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepo) SalesSince(ctx context.Context, since time.Time, bucketFormat string) ([]models.SalesBucket, error) {
	args := m.Called(ctx, since, bucketFormat)
	if b, ok := args.Get(0).([]models.SalesBucket); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) SalesBySellerSince(ctx context.Context, sellerID primitive.ObjectID, since time.Time, bucketFormat string) ([]models.SalesBucket, error) {
	args := m.Called(ctx, sellerID, since, bucketFormat)
	if b, ok := args.Get(0).([]models.SalesBucket); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) Upsert(ctx context.Context, buyerID, productID primitive.ObjectID, delta int) (*models.Cart, error) {
	args := m.Called(ctx, buyerID, productID, delta)
	if c, ok := args.Get(0).(*models.Cart); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepo) SetQuantity(ctx context.Context, buyerID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	args := m.Called(ctx, buyerID, productID, quantity)
	if c, ok := args.Get(0).(*models.Cart); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepo) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Cart, error) {
	args := m.Called(ctx, buyerID)
	if c, ok := args.Get(0).([]models.Cart); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepo) CountByBuyer(ctx context.Context, buyerID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartRepo) DeleteByBuyer(ctx context.Context, buyerID primitive.ObjectID) error {
	return m.Called(ctx, buyerID).Error(0)
}

func (m *MockCartRepo) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	return m.Called(ctx, productID).Error(0)
}

type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) Insert(ctx context.Context, address *models.Address) (primitive.ObjectID, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockAddressRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*models.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepo) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID) ([]models.Address, error) {
	args := m.Called(ctx, buyerID)
	if a, ok := args.Get(0).([]models.Address); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAddressRepo) DeleteByBuyer(ctx context.Context, buyerID primitive.ObjectID) error {
	return m.Called(ctx, buyerID).Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Insert(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	args := m.Called(ctx, admin)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockAdminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if a, ok := args.Get(0).(*models.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, details models.EmailDetails) error {
	return m.Called(ctx, details).Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, string, error) {
	args := m.Called(ctx, file, folder)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockUploader) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (string, error) {
	args := m.Called(ctx, amount, receipt)
	return args.String(0), args.Error(1)
}
