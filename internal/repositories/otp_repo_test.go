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

type OTPRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    OTPRepository
	context context.Context
}

func (suite *OTPRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewOTPRepo(mock)
	suite.context = context.Background()
}

func (suite *OTPRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOTPRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OTPRepoTestSuite))
}

func (suite *OTPRepoTestSuite) TestCreate_Success() {
	otp := &models.OTP{
		ID:        uuid.New(),
		Email:     "shopper@example.com",
		Code:      "042137",
		Purpose:   models.OTPPurposeVerifyEmail,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	suite.mock.ExpectExec(`INSERT INTO otps`).
		WithArgs(otp.ID, otp.Email, otp.Code, otp.Purpose, otp.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, otp)
	assert.NoError(suite.T(), err)
}

func (suite *OTPRepoTestSuite) TestGetLatest_Success() {
	id := uuid.New()
	expires := time.Now().Add(10 * time.Minute)
	created := time.Now()
	rows := pgxmock.NewRows([]string{"id", "email", "code", "purpose", "expires_at", "created_at"}).
		AddRow(id, "shopper@example.com", "042137", models.OTPPurposeResetPassword, expires, created)

	suite.mock.ExpectQuery(`FROM otps\s+WHERE email = \$1 AND purpose = \$2\s+ORDER BY created_at DESC\s+LIMIT 1`).
		WithArgs("shopper@example.com", models.OTPPurposeResetPassword).
		WillReturnRows(rows)

	otp, err := suite.repo.GetLatest(suite.context, "shopper@example.com", models.OTPPurposeResetPassword)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, otp.ID)
	assert.Equal(suite.T(), "042137", otp.Code)
}

func (suite *OTPRepoTestSuite) TestGetLatest_NoneIssued() {
	suite.mock.ExpectQuery(`FROM otps`).
		WithArgs("nobody@example.com", models.OTPPurposeVerifyEmail).
		WillReturnError(pgx.ErrNoRows)

	otp, err := suite.repo.GetLatest(suite.context, "nobody@example.com", models.OTPPurposeVerifyEmail)
	assert.Nil(suite.T(), otp)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}

func (suite *OTPRepoTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mock.ExpectExec(`DELETE FROM otps WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(suite.T(), suite.repo.Delete(suite.context, id))
}

func (suite *OTPRepoTestSuite) TestDeleteExpired_ReturnsCount() {
	now := time.Now().UTC()
	suite.mock.ExpectExec(`DELETE FROM otps WHERE expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 7))

	deleted, err := suite.repo.DeleteExpired(suite.context, now)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), deleted)
}
