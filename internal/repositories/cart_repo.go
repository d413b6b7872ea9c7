package repositories

import (
	"context"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type CartRepository interface {
	Add(ctx context.Context, item *models.CartItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	// ListByUserForUpdate locks the user's cart rows for the duration of
	// the surrounding transaction.
	ListByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}

type cartRepo struct {
	db DB
}

func NewCartRepo(db DB) CartRepository {
	return &cartRepo{db: db}
}

// Add always inserts a new row. Repeated adds for the same
// (user, product, size) intentionally append duplicate lines.
func (r *cartRepo) Add(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart (id, user_id, product_id, size_id, quantity, added_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.UserID, item.ProductID, item.SizeID, item.Quantity)
	return err
}

func (r *cartRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	item := &models.CartItem{}
	query := `
		SELECT id, user_id, product_id, size_id, quantity, added_at
		FROM cart
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.UserID, &item.ProductID, &item.SizeID, &item.Quantity, &item.AddedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *cartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, size_id, quantity, added_at
		FROM cart
		WHERE user_id = $1
		ORDER BY added_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *cartRepo) ListByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, size_id, quantity, added_at
		FROM cart
		WHERE user_id = $1
		ORDER BY added_at ASC
		FOR UPDATE
	`
	return r.list(ctx, query, userID)
}

func (r *cartRepo) list(ctx context.Context, query string, userID uuid.UUID) ([]*models.CartItem, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.CartItem
	for rows.Next() {
		item := &models.CartItem{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.SizeID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Delete removes one cart line scoped by owner. Returns false when no row
// matched, so callers can tell "not found" from "deleted".
func (r *cartRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM cart WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *cartRepo) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM cart WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}
