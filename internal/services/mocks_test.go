package services

import (
	"context"
	"time"

	"threadmart/internal/models"
	"threadmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories and services

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Add(ctx context.Context, item *models.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) ListByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) CreateBatch(ctx context.Context, items []*models.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrderItem), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error {
	args := m.Called(ctx, id, objectName)
	return args.Error(0)
}

func (m *MockProductRepository) AttachCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	args := m.Called(ctx, productID, categoryID)
	return args.Error(0)
}

func (m *MockProductRepository) DetachCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	args := m.Called(ctx, productID, categoryID)
	return args.Error(0)
}

func (m *MockProductRepository) CategoriesFor(ctx context.Context, productID uuid.UUID) ([]*models.Category, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockProductRepository) AttachSize(ctx context.Context, productID, sizeID uuid.UUID) error {
	args := m.Called(ctx, productID, sizeID)
	return args.Error(0)
}

func (m *MockProductRepository) DetachSize(ctx context.Context, productID, sizeID uuid.UUID) error {
	args := m.Called(ctx, productID, sizeID)
	return args.Error(0)
}

func (m *MockProductRepository) SizesFor(ctx context.Context, productID uuid.UUID) ([]*models.Size, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Size), args.Error(1)
}

func (m *MockProductRepository) SizeLinked(ctx context.Context, productID, sizeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID, sizeID)
	return args.Bool(0), args.Error(1)
}

type MockSizeRepository struct {
	mock.Mock
}

func (m *MockSizeRepository) Create(ctx context.Context, size *models.Size) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockSizeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Size, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Size), args.Error(1)
}

func (m *MockSizeRepository) Update(ctx context.Context, size *models.Size) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockSizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSizeRepository) List(ctx context.Context) ([]*models.Size, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Size), args.Error(1)
}

type MockSuperuserRepository struct {
	mock.Mock
}

func (m *MockSuperuserRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSuperuserRepository) Add(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSuperuserRepository) Remove(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSuperuserRepository) List(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetEmailVerified(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *models.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) GetLatest(ctx context.Context, email, purpose string) (*models.OTP, error) {
	args := m.Called(ctx, email, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OTP), args.Error(1)
}

func (m *MockOTPRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOTPRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) SignUp(ctx context.Context, email, password string) (*ProviderSession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProviderSession), args.Error(1)
}

func (m *MockAuthProvider) SignIn(ctx context.Context, email, password string) (*ProviderSession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProviderSession), args.Error(1)
}

func (m *MockAuthProvider) UpdatePassword(ctx context.Context, email, newPassword string) error {
	args := m.Called(ctx, email, newPassword)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmail(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCache) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	args := m.Called(ctx, product, ttl)
	return args.Error(0)
}

func (m *MockCache) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCache) IsRateLimited(ctx context.Context, key string, limit int) (bool, error) {
	args := m.Called(ctx, key, limit)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) IncrementRateLimit(ctx context.Context, key string, window time.Duration) error {
	args := m.Called(ctx, key, window)
	return args.Error(0)
}

func (m *MockCache) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// stubTxManager runs the callback against the given repos without a real
// transaction. The callback's error propagates exactly as a rollback would.
type stubTxManager struct {
	repos repositories.TxRepos
}

func (s *stubTxManager) WithinTx(_ context.Context, fn func(r repositories.TxRepos) error) error {
	return fn(s.repos)
}

type stubTxRepos struct {
	carts  repositories.CartRepository
	orders repositories.OrderRepository
	items  repositories.OrderItemRepository
}

func (s *stubTxRepos) Carts() repositories.CartRepository           { return s.carts }
func (s *stubTxRepos) Orders() repositories.OrderRepository         { return s.orders }
func (s *stubTxRepos) OrderItems() repositories.OrderItemRepository { return s.items }
