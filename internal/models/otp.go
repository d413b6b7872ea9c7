package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP purposes. A code issued for one purpose cannot be consumed for
// another.
const (
	OTPPurposeVerifyEmail   = "verify_email"
	OTPPurposeResetPassword = "reset_password"
)

type OTP struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Code      string    `json:"-" db:"code"`
	Purpose   string    `json:"purpose" db:"purpose"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Expired reports whether the code is past its expiry at the given time.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
