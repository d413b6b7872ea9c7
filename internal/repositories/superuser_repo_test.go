package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SuperuserRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    SuperuserRepository
	userID  uuid.UUID
	context context.Context
}

func (suite *SuperuserRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSuperuserRepo(mock)
	suite.userID = uuid.New()
	suite.context = context.Background()
}

func (suite *SuperuserRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestSuperuserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SuperuserRepoTestSuite))
}

func (suite *SuperuserRepoTestSuite) TestExists_True() {
	rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
	suite.mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM superusers WHERE user_id = \$1\)`).
		WithArgs(suite.userID).
		WillReturnRows(rows)

	exists, err := suite.repo.Exists(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *SuperuserRepoTestSuite) TestExists_False() {
	rows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(suite.userID).
		WillReturnRows(rows)

	exists, err := suite.repo.Exists(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *SuperuserRepoTestSuite) TestExists_QueryError() {
	// A failed lookup must surface as an error, not as "not a superuser".
	suite.mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(suite.userID).
		WillReturnError(errors.New("connection refused"))

	exists, err := suite.repo.Exists(suite.context, suite.userID)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *SuperuserRepoTestSuite) TestAdd_Idempotent() {
	suite.mock.ExpectExec(`INSERT INTO superusers`).
		WithArgs(suite.userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`INSERT INTO superusers`).
		WithArgs(suite.userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	assert.NoError(suite.T(), suite.repo.Add(suite.context, suite.userID))
	assert.NoError(suite.T(), suite.repo.Add(suite.context, suite.userID))
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *SuperuserRepoTestSuite) TestRemove_Success() {
	suite.mock.ExpectExec(`DELETE FROM superusers WHERE user_id = \$1`).
		WithArgs(suite.userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(suite.T(), suite.repo.Remove(suite.context, suite.userID))
}

func (suite *SuperuserRepoTestSuite) TestList_Success() {
	other := uuid.New()
	rows := pgxmock.NewRows([]string{"user_id"}).
		AddRow(suite.userID).
		AddRow(other)

	suite.mock.ExpectQuery(`SELECT user_id FROM superusers`).
		WillReturnRows(rows)

	ids, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), []uuid.UUID{suite.userID, other}, ids)
}
