package services

import (
	"context"
	"errors"
	"fmt"

	"threadmart/internal/models"
	"threadmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Maximum units per cart line.
const maxCartQuantity = 1000

type CartServiceInterface interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, sizeID *uuid.UUID, quantity int) (*models.CartItem, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	sizeRepo    repositories.SizeRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, sizeRepo repositories.SizeRepository) CartServiceInterface {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		sizeRepo:    sizeRepo,
	}
}

// AddItem appends a new cart line. A repeated add for the same
// (product, size) creates another line rather than bumping quantity.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, sizeID *uuid.UUID, quantity int) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if quantity < 1 || quantity > maxCartQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", ErrValidation, maxCartQuantity)
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}
	if sizeID != nil {
		if _, err := s.sizeRepo.GetByID(ctx, *sizeID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: size %s", ErrNotFound, *sizeID)
			}
			return nil, err
		}
	}

	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		SizeID:    sizeID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

// RemoveItem deletes one line, distinguishing "not found" from a store
// failure.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	deleted, err := s.cartRepo.Delete(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.ClearByUser(ctx, userID)
}
