package repositories

import (
	"context"
	"testing"
	"time"

	"threadmart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	orders    OrderRepository
	items     OrderItemRepository
	userID    uuid.UUID
	context   context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.orders = NewOrderRepo(mock)
	suite.items = NewOrderItemRepo(mock)
	suite.userID = uuid.New()
	suite.context = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) TestCreate_Success() {
	order := &models.Order{
		ID:          uuid.New(),
		UserID:      suite.userID,
		OrderStatus: models.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.UserID, order.OrderStatus, order.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.orders.Create(suite.context, order)
	assert.NoError(suite.T(), err)
}

func (suite *OrderRepoTestSuite) TestCreate_FreeFormStatus() {
	// order_status is a plain string column; any value goes through.
	order := &models.Order{
		ID:          uuid.New(),
		UserID:      suite.userID,
		OrderStatus: "Awaiting carrier pickup",
		CreatedAt:   time.Now().UTC(),
	}

	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.UserID, order.OrderStatus, order.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.orders.Create(suite.context, order)
	assert.NoError(suite.T(), err)
}

func (suite *OrderRepoTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mock.ExpectQuery(`FROM orders\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	order, err := suite.orders.GetByID(suite.context, id)
	assert.Nil(suite.T(), order)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *OrderRepoTestSuite) TestListByUser_Success() {
	rows := pgxmock.NewRows([]string{"id", "user_id", "order_status", "created_at"}).
		AddRow(uuid.New(), suite.userID, models.OrderStatusPending, time.Now()).
		AddRow(uuid.New(), suite.userID, "Shipped", time.Now().Add(-time.Hour))

	suite.mock.ExpectQuery(`FROM orders\s+WHERE user_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs(suite.userID, 10, 0).
		WillReturnRows(rows)

	orders, err := suite.orders.ListByUser(suite.context, suite.userID, 10, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), orders, 2)
	assert.Equal(suite.T(), models.OrderStatusPending, orders[0].OrderStatus)
}

func (suite *OrderRepoTestSuite) TestUpdateStatus_NotFound() {
	id := uuid.New()
	suite.mock.ExpectExec(`UPDATE orders SET order_status = \$1 WHERE id = \$2`).
		WithArgs("Shipped", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := suite.orders.UpdateStatus(suite.context, id, "Shipped")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), updated)
}

func (suite *OrderRepoTestSuite) TestCountPendingOlderThan_Success() {
	cutoff := time.Now().Add(-24 * time.Hour)
	rows := pgxmock.NewRows([]string{"count"}).AddRow(int64(4))

	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE order_status = \$1 AND created_at < \$2`).
		WithArgs(models.OrderStatusPending, cutoff).
		WillReturnRows(rows)

	count, err := suite.orders.CountPendingOlderThan(suite.context, cutoff)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), count)
}

func (suite *OrderRepoTestSuite) TestCreateBatch_SingleStatement() {
	orderID := uuid.New()
	sizeID := uuid.New()
	items := []*models.OrderItem{
		{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), SizeID: &sizeID, Quantity: 2},
		{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), SizeID: nil, Quantity: 1},
	}

	suite.mock.ExpectExec(`INSERT INTO orderitems \(id, order_id, product_id, size_id, quantity\) VALUES \(\$1, \$2, \$3, \$4, \$5\), \(\$6, \$7, \$8, \$9, \$10\)`).
		WithArgs(
			items[0].ID, items[0].OrderID, items[0].ProductID, items[0].SizeID, items[0].Quantity,
			items[1].ID, items[1].OrderID, items[1].ProductID, items[1].SizeID, items[1].Quantity,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	err := suite.items.CreateBatch(suite.context, items)
	assert.NoError(suite.T(), err)
}

func (suite *OrderRepoTestSuite) TestCreateBatch_EmptyIsNoop() {
	err := suite.items.CreateBatch(suite.context, nil)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestListByOrder_Success() {
	orderID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "order_id", "product_id", "size_id", "quantity"}).
		AddRow(uuid.New(), orderID, uuid.New(), (*uuid.UUID)(nil), 3)

	suite.mock.ExpectQuery(`FROM orderitems\s+WHERE order_id = \$1`).
		WithArgs(orderID).
		WillReturnRows(rows)

	items, err := suite.items.ListByOrder(suite.context, orderID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 3, items[0].Quantity)
}
