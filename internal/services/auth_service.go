package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"threadmart/internal/caching"
	"threadmart/internal/models"
	"threadmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	otpLength      = 6
	otpTTL         = 10 * time.Minute
	otpRateWindow  = 10 * time.Minute
	otpRateLimit   = 3
)

// AuthService fronts the hosted auth provider and owns the local OTP flow
// for email verification and password reset.
type AuthService interface {
	SignUp(ctx context.Context, email, name, password string) (*models.User, *ProviderSession, error)
	SignIn(ctx context.Context, email, password string) (*ProviderSession, error)

	RequestOTP(ctx context.Context, email, purpose string) error
	VerifyOTP(ctx context.Context, email, code, purpose string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	provider AuthProviderService
	mailer   MailerService
	userRepo repositories.UserRepository
	otpRepo  repositories.OTPRepository
	cacheSvc caching.CacheService
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProviderService, mailer MailerService, userRepo repositories.UserRepository, otpRepo repositories.OTPRepository, cacheSvc caching.CacheService) AuthService {
	return &authService{
		provider: provider,
		mailer:   mailer,
		userRepo: userRepo,
		otpRepo:  otpRepo,
		cacheSvc: cacheSvc,
	}
}

func (s *authService) SignUp(ctx context.Context, email, name, password string) (*models.User, *ProviderSession, error) {
	session, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user := &models.User{
		ID:    uuid.New(),
		Email: email,
		Name:  name,
	}
	// Mirror the provider's subject when it hands one back, so tokens and
	// local rows agree on the user ID.
	if providerID, parseErr := uuid.Parse(session.UserID); parseErr == nil {
		user.ID = providerID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	if err := s.RequestOTP(ctx, email, models.OTPPurposeVerifyEmail); err != nil {
		// Signup already succeeded on the provider side; the user can ask
		// for another code.
		log.Printf("WARN: verification OTP for %s not sent: %v", email, err)
	}

	return user, session, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*ProviderSession, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForbidden, err)
	}
	return session, nil
}

func (s *authService) RequestOTP(ctx context.Context, email, purpose string) error {
	if purpose != models.OTPPurposeVerifyEmail && purpose != models.OTPPurposeResetPassword {
		return fmt.Errorf("%w: unknown otp purpose %q", ErrValidation, purpose)
	}

	rateKey := fmt.Sprintf("otp:%s:%s", purpose, email)
	limited, err := s.cacheSvc.IsRateLimited(ctx, rateKey, otpRateLimit)
	if err != nil {
		// A cache failure must not block verification mail.
		log.Printf("WARN: otp rate limit check failed: %v", err)
	}
	if limited {
		return fmt.Errorf("%w: too many codes requested for %s", ErrRateLimited, email)
	}

	code, err := generateOTPCode(otpLength)
	if err != nil {
		return err
	}

	otp := &models.OTP{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().UTC().Add(otpTTL),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return err
	}

	if err := s.cacheSvc.IncrementRateLimit(ctx, rateKey, otpRateWindow); err != nil {
		log.Printf("WARN: otp rate limit increment failed: %v", err)
	}

	subject := "Your Threadmart verification code"
	body := fmt.Sprintf("Your one-time code is %s. It expires in %d minutes.", code, int(otpTTL.Minutes()))
	if err := s.mailer.SendEmail(ctx, email, subject, body); err != nil {
		return err
	}
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code, purpose string) error {
	otp, err := s.otpRepo.GetLatest(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: no code issued for %s", ErrNotFound, email)
		}
		return err
	}

	if otp.Expired(time.Now().UTC()) {
		return fmt.Errorf("%w: code expired", ErrValidation)
	}
	if otp.Code != code {
		return fmt.Errorf("%w: incorrect code", ErrValidation)
	}

	// Single use: a verified code is gone.
	if err := s.otpRepo.Delete(ctx, otp.ID); err != nil {
		return err
	}

	if purpose == models.OTPPurposeVerifyEmail {
		if err := s.userRepo.SetEmailVerified(ctx, email); err != nil {
			return err
		}
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if err := s.VerifyOTP(ctx, email, code, models.OTPPurposeResetPassword); err != nil {
		return err
	}
	if err := s.provider.UpdatePassword(ctx, email, newPassword); err != nil {
		return fmt.Errorf("password update rejected by auth provider: %v", err)
	}
	return nil
}

// generateOTPCode returns a zero-padded numeric code of the given length.
func generateOTPCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %v", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
