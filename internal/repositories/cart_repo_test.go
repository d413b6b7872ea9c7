package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"threadmart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CartRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CartRepository
	userID  uuid.UUID
	context context.Context
}

func (suite *CartRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCartRepo(mock)
	suite.userID = uuid.New()
	suite.context = context.Background()
}

func (suite *CartRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestCartRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepoTestSuite))
}

func (suite *CartRepoTestSuite) TestAdd_Success() {
	sizeID := uuid.New()
	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    suite.userID,
		ProductID: uuid.New(),
		SizeID:    &sizeID,
		Quantity:  2,
	}

	suite.mock.ExpectExec(`INSERT INTO cart`).
		WithArgs(item.ID, item.UserID, item.ProductID, item.SizeID, item.Quantity).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Add(suite.context, item)
	assert.NoError(suite.T(), err)
}

func (suite *CartRepoTestSuite) TestAdd_DuplicateLineInsertsAgain() {
	// Same product, same size, added twice: both inserts go through as
	// separate rows.
	productID := uuid.New()
	for i := 0; i < 2; i++ {
		item := &models.CartItem{
			ID:        uuid.New(),
			UserID:    suite.userID,
			ProductID: productID,
			SizeID:    nil,
			Quantity:  1,
		}
		suite.mock.ExpectExec(`INSERT INTO cart`).
			WithArgs(item.ID, item.UserID, item.ProductID, item.SizeID, item.Quantity).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := suite.repo.Add(suite.context, item)
		assert.NoError(suite.T(), err)
	}
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *CartRepoTestSuite) TestListByUser_Success() {
	sizeID := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "user_id", "product_id", "size_id", "quantity", "added_at"}).
		AddRow(uuid.New(), suite.userID, uuid.New(), &sizeID, 2, now).
		AddRow(uuid.New(), suite.userID, uuid.New(), (*uuid.UUID)(nil), 1, now.Add(-time.Minute))

	suite.mock.ExpectQuery(`SELECT id, user_id, product_id, size_id, quantity, added_at\s+FROM cart\s+WHERE user_id = \$1\s+ORDER BY added_at DESC`).
		WithArgs(suite.userID).
		WillReturnRows(rows)

	items, err := suite.repo.ListByUser(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.NotNil(suite.T(), items[0].SizeID)
	assert.Nil(suite.T(), items[1].SizeID)
}

func (suite *CartRepoTestSuite) TestListByUser_Empty() {
	rows := pgxmock.NewRows([]string{"id", "user_id", "product_id", "size_id", "quantity", "added_at"})

	suite.mock.ExpectQuery(`FROM cart`).
		WithArgs(suite.userID).
		WillReturnRows(rows)

	items, err := suite.repo.ListByUser(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), items)
}

func (suite *CartRepoTestSuite) TestListByUserForUpdate_LocksRows() {
	rows := pgxmock.NewRows([]string{"id", "user_id", "product_id", "size_id", "quantity", "added_at"}).
		AddRow(uuid.New(), suite.userID, uuid.New(), (*uuid.UUID)(nil), 3, time.Now())

	suite.mock.ExpectQuery(`FROM cart\s+WHERE user_id = \$1\s+ORDER BY added_at ASC\s+FOR UPDATE`).
		WithArgs(suite.userID).
		WillReturnRows(rows)

	items, err := suite.repo.ListByUserForUpdate(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
}

func (suite *CartRepoTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mock.ExpectQuery(`FROM cart\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	item, err := suite.repo.GetByID(suite.context, id)
	assert.Nil(suite.T(), item)
	assert.True(suite.T(), errors.Is(err, pgx.ErrNoRows))
}

func (suite *CartRepoTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mock.ExpectExec(`DELETE FROM cart WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, suite.userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := suite.repo.Delete(suite.context, id, suite.userID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), deleted)
}

func (suite *CartRepoTestSuite) TestDelete_WrongOwnerDeletesNothing() {
	id := uuid.New()
	suite.mock.ExpectExec(`DELETE FROM cart WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, suite.userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := suite.repo.Delete(suite.context, id, suite.userID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), deleted)
}

func (suite *CartRepoTestSuite) TestClearByUser_Success() {
	suite.mock.ExpectExec(`DELETE FROM cart WHERE user_id = \$1`).
		WithArgs(suite.userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	err := suite.repo.ClearByUser(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
}
