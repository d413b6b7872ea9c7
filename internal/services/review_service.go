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

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, userID, productID uuid.UUID, rating int, body string) (*models.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*models.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
	CreateReply(ctx context.Context, userID, reviewID uuid.UUID, body string) (*models.Reply, error)
	DeleteReply(ctx context.Context, userID, replyID uuid.UUID) error
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	replyRepo   repositories.ReplyRepository
	productRepo repositories.ProductRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, replyRepo repositories.ReplyRepository, productRepo repositories.ProductRepository) ReviewServiceInterface {
	return &reviewService{
		reviewRepo:  reviewRepo,
		replyRepo:   replyRepo,
		productRepo: productRepo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID, productID uuid.UUID, rating int, body string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrValidation)
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}

	review := &models.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Body:      body,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListProductReviews returns reviews newest-first, each with its reply
// thread oldest-first.
func (s *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, review := range reviews {
		replies, err := s.replyRepo.ListByReview(ctx, review.ID)
		if err != nil {
			return nil, err
		}
		review.Replies = replies
	}
	return reviews, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	deleted, err := s.reviewRepo.Delete(ctx, reviewID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}
	return nil
}

func (s *reviewService) CreateReply(ctx context.Context, userID, reviewID uuid.UUID, body string) (*models.Reply, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrValidation)
	}
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
		}
		return nil, err
	}

	reply := &models.Reply{
		ID:       uuid.New(),
		ReviewID: reviewID,
		UserID:   userID,
		Body:     body,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *reviewService) DeleteReply(ctx context.Context, userID, replyID uuid.UUID) error {
	deleted, err := s.replyRepo.Delete(ctx, replyID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: reply %s", ErrNotFound, replyID)
	}
	return nil
}
