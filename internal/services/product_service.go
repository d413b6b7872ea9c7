package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"threadmart/internal/caching"
	"threadmart/internal/models"
	"threadmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	productCacheTTL   = 5 * time.Minute
	imageURLExpiry    = 15 * time.Minute
	ProductImageBucket = "product-images"
)

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error)

	AttachCategory(ctx context.Context, productID, categoryID uuid.UUID) error
	DetachCategory(ctx context.Context, productID, categoryID uuid.UUID) error
	AttachSize(ctx context.Context, productID, sizeID uuid.UUID) error
	DetachSize(ctx context.Context, productID, sizeID uuid.UUID) error

	UploadImage(ctx context.Context, productID uuid.UUID, contentType string, reader io.Reader, size int64) error
}

type productService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	sizeRepo     repositories.SizeRepository
	minioSvc     MinioService
	cacheSvc     caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, sizeRepo repositories.SizeRepository, minioSvc MinioService, cacheSvc caching.CacheService) ProductServiceInterface {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		minioSvc:     minioSvc,
		cacheSvc:     cacheSvc,
	}
}

func (s *productService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cacheSvc.GetProduct(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		// Cache trouble never fails a read.
		log.Printf("WARN: product cache read failed: %v", err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}

	if product.Categories, err = s.productRepo.CategoriesFor(ctx, id); err != nil {
		return nil, err
	}
	if product.Sizes, err = s.productRepo.SizesFor(ctx, id); err != nil {
		return nil, err
	}

	if product.ImageObject != nil {
		url, err := s.minioSvc.GetPresignedURL(ctx, ProductImageBucket, *product.ImageObject, imageURLExpiry)
		if err != nil {
			log.Printf("WARN: presigned URL for product %s failed: %v", id, err)
		} else {
			product.ImageURL = url
		}
	}

	if err := s.cacheSvc.SetProduct(ctx, product, productCacheTTL); err != nil {
		log.Printf("WARN: product cache write failed: %v", err)
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	if _, err := s.productRepo.GetByID(ctx, product.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: product %s", ErrNotFound, product.ID)
		}
		return err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx, product.ID)
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	if product.ImageObject != nil {
		if err := s.minioSvc.DeleteImage(ctx, ProductImageBucket, *product.ImageObject); err != nil {
			log.Printf("WARN: deleting image for product %s failed: %v", id, err)
		}
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *productService) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.productRepo.List(ctx, filter)
}

func (s *productService) AttachCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	if err := s.requireProduct(ctx, productID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
		}
		return err
	}
	if err := s.productRepo.AttachCategory(ctx, productID, categoryID); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) DetachCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	if err := s.productRepo.DetachCategory(ctx, productID, categoryID); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) AttachSize(ctx context.Context, productID, sizeID uuid.UUID) error {
	if err := s.requireProduct(ctx, productID); err != nil {
		return err
	}
	if _, err := s.sizeRepo.GetByID(ctx, sizeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: size %s", ErrNotFound, sizeID)
		}
		return err
	}
	if err := s.productRepo.AttachSize(ctx, productID, sizeID); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) DetachSize(ctx context.Context, productID, sizeID uuid.UUID) error {
	if err := s.productRepo.DetachSize(ctx, productID, sizeID); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) UploadImage(ctx context.Context, productID uuid.UUID, contentType string, reader io.Reader, size int64) error {
	if err := s.requireProduct(ctx, productID); err != nil {
		return err
	}

	objectName := fmt.Sprintf("%s/%s", productID.String(), uuid.NewString())
	if err := s.minioSvc.UploadImage(ctx, ProductImageBucket, objectName, contentType, reader, size); err != nil {
		return err
	}
	if err := s.productRepo.SetImageObject(ctx, productID, objectName); err != nil {
		return err
	}
	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) requireProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return err
	}
	return nil
}

func (s *productService) invalidate(ctx context.Context, productID uuid.UUID) {
	if err := s.cacheSvc.DeleteProduct(ctx, productID); err != nil {
		log.Printf("WARN: product cache invalidation failed: %v", err)
	}
}
