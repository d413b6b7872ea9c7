package services

import (
	"context"

	"threadmart/internal/repositories"

	"github.com/google/uuid"
)

// PermissionService answers whether a user may perform privileged catalog
// and order administration.
type PermissionService interface {
	// IsSuperuser returns (false, nil) when the user is simply not a
	// superuser and (false, err) when the lookup itself failed, so
	// callers can answer 403 and 500 respectively.
	IsSuperuser(ctx context.Context, userID uuid.UUID) (bool, error)
	Grant(ctx context.Context, userID uuid.UUID) error
	Revoke(ctx context.Context, userID uuid.UUID) error
}

type permissionService struct {
	superusers repositories.SuperuserRepository
}

func NewPermissionService(superusers repositories.SuperuserRepository) PermissionService {
	return &permissionService{superusers: superusers}
}

func (s *permissionService) IsSuperuser(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	return s.superusers.Exists(ctx, userID)
}

func (s *permissionService) Grant(ctx context.Context, userID uuid.UUID) error {
	return s.superusers.Add(ctx, userID)
}

func (s *permissionService) Revoke(ctx context.Context, userID uuid.UUID) error {
	return s.superusers.Remove(ctx, userID)
}
