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

// CategoryService manages the category reference table.
type CategoryService interface {
	Create(ctx context.Context, name string) (*models.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Category, error)
}

type categoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	category := &models.Category{ID: uuid.New(), Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %s", ErrNotFound, id)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, &models.Category{ID: id, Name: name})
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repo.List(ctx)
}

// SizeService manages the size reference table.
type SizeService interface {
	Create(ctx context.Context, name string) (*models.Size, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Size, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Size, error)
}

type sizeService struct {
	repo repositories.SizeRepository
}

func NewSizeService(repo repositories.SizeRepository) SizeService {
	return &sizeService{repo: repo}
}

func (s *sizeService) Create(ctx context.Context, name string) (*models.Size, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	size := &models.Size{ID: uuid.New(), Name: name}
	if err := s.repo.Create(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

func (s *sizeService) Get(ctx context.Context, id uuid.UUID) (*models.Size, error) {
	size, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: size %s", ErrNotFound, id)
		}
		return nil, err
	}
	return size, nil
}

func (s *sizeService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, &models.Size{ID: id, Name: name})
}

func (s *sizeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *sizeService) List(ctx context.Context) ([]*models.Size, error) {
	return s.repo.List(ctx)
}
