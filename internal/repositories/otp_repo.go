package repositories

import (
	"context"
	"time"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *models.OTP) error
	// GetLatest returns the most recently issued code for an email and
	// purpose, expired or not. Expiry is the caller's concern.
	GetLatest(ctx context.Context, email, purpose string) (*models.OTP, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type otpRepo struct {
	db DB
}

func NewOTPRepo(db DB) OTPRepository {
	return &otpRepo{db: db}
}

func (r *otpRepo) Create(ctx context.Context, otp *models.OTP) error {
	query := `
		INSERT INTO otps (id, email, code, purpose, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, otp.ID, otp.Email, otp.Code, otp.Purpose, otp.ExpiresAt)
	return err
}

func (r *otpRepo) GetLatest(ctx context.Context, email, purpose string) (*models.OTP, error) {
	otp := &models.OTP{}
	query := `
		SELECT id, email, code, purpose, expires_at, created_at
		FROM otps
		WHERE email = $1 AND purpose = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, email, purpose).Scan(&otp.ID, &otp.Email, &otp.Code, &otp.Purpose, &otp.ExpiresAt, &otp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return otp, nil
}

func (r *otpRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM otps WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *otpRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM otps WHERE expires_at < $1`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
