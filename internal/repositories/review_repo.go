package repositories

import (
	"context"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Review, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type reviewRepo struct {
	db DB
}

func NewReviewRepo(db DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, rating, body, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, review.ID, review.ProductID, review.UserID, review.Rating, review.Body)
	return err
}

func (r *reviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	review := &models.Review{}
	query := `
		SELECT id, product_id, user_id, rating, body, created_at
		FROM reviews
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Body, &review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Review, error) {
	query := `
		SELECT id, product_id, user_id, rating, body, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Body, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM reviews WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
