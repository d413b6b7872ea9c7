package repositories

import (
	"context"
	"time"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Order, error)
	List(ctx context.Context, limit, offset int) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type orderRepo struct {
	db DB
}

func NewOrderRepo(db DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, user_id, order_status, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, order.ID, order.UserID, order.OrderStatus, order.CreatedAt)
	return err
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, user_id, order_status, created_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.UserID, &order.OrderStatus, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, order_status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.OrderStatus, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepo) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, order_status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.OrderStatus, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus writes the given status string as-is. Returns false when the
// order does not exist.
func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	query := `UPDATE orders SET order_status = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *orderRepo) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM orders WHERE order_status = $1 AND created_at < $2`
	err := r.db.QueryRow(ctx, query, models.OrderStatusPending, cutoff).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
