package services

import (
	"context"
	"testing"

	"threadmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	cartRepo    *MockCartRepository
	productRepo *MockProductRepository
	sizeRepo    *MockSizeRepository
	service     CartServiceInterface
	userID      uuid.UUID
	context     context.Context
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.cartRepo = new(MockCartRepository)
	suite.productRepo = new(MockProductRepository)
	suite.sizeRepo = new(MockSizeRepository)
	suite.service = NewCartService(suite.cartRepo, suite.productRepo, suite.sizeRepo)
	suite.userID = uuid.New()
	suite.context = context.Background()
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func (suite *CartServiceTestSuite) TestAddItem_Success() {
	productID := uuid.New()
	sizeID := uuid.New()
	suite.productRepo.On("GetByID", suite.context, productID).Return(&models.Product{ID: productID}, nil)
	suite.sizeRepo.On("GetByID", suite.context, sizeID).Return(&models.Size{ID: sizeID}, nil)
	suite.cartRepo.On("Add", suite.context, mock.AnythingOfType("*models.CartItem")).Return(nil)

	item, err := suite.service.AddItem(suite.context, suite.userID, productID, &sizeID, 2)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), productID, item.ProductID)
	assert.Equal(suite.T(), &sizeID, item.SizeID)
	assert.Equal(suite.T(), 2, item.Quantity)
}

func (suite *CartServiceTestSuite) TestAddItem_NoSize() {
	productID := uuid.New()
	suite.productRepo.On("GetByID", suite.context, productID).Return(&models.Product{ID: productID}, nil)
	suite.cartRepo.On("Add", suite.context, mock.Anything).Return(nil)

	item, err := suite.service.AddItem(suite.context, suite.userID, productID, nil, 1)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), item.SizeID)
	suite.sizeRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestAddItem_QuantityBounds() {
	productID := uuid.New()

	_, err := suite.service.AddItem(suite.context, suite.userID, productID, nil, 0)
	assert.ErrorIs(suite.T(), err, ErrValidation)

	_, err = suite.service.AddItem(suite.context, suite.userID, productID, nil, maxCartQuantity+1)
	assert.ErrorIs(suite.T(), err, ErrValidation)

	suite.cartRepo.AssertNotCalled(suite.T(), "Add", mock.Anything, mock.Anything)
}

func (suite *CartServiceTestSuite) TestAddItem_UnknownProduct() {
	productID := uuid.New()
	suite.productRepo.On("GetByID", suite.context, productID).Return(nil, pgx.ErrNoRows)

	_, err := suite.service.AddItem(suite.context, suite.userID, productID, nil, 1)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *CartServiceTestSuite) TestAddItem_UnknownSize() {
	productID := uuid.New()
	sizeID := uuid.New()
	suite.productRepo.On("GetByID", suite.context, productID).Return(&models.Product{ID: productID}, nil)
	suite.sizeRepo.On("GetByID", suite.context, sizeID).Return(nil, pgx.ErrNoRows)

	_, err := suite.service.AddItem(suite.context, suite.userID, productID, &sizeID, 1)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *CartServiceTestSuite) TestRemoveItem_NotFound() {
	itemID := uuid.New()
	suite.cartRepo.On("Delete", suite.context, itemID, suite.userID).Return(false, nil)

	err := suite.service.RemoveItem(suite.context, suite.userID, itemID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *CartServiceTestSuite) TestRemoveItem_Success() {
	itemID := uuid.New()
	suite.cartRepo.On("Delete", suite.context, itemID, suite.userID).Return(true, nil)

	err := suite.service.RemoveItem(suite.context, suite.userID, itemID)
	assert.NoError(suite.T(), err)
}

func (suite *CartServiceTestSuite) TestClear_Delegates() {
	suite.cartRepo.On("ClearByUser", suite.context, suite.userID).Return(nil)

	assert.NoError(suite.T(), suite.service.Clear(suite.context, suite.userID))
}
