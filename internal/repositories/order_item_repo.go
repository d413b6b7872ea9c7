package repositories

import (
	"context"
	"fmt"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []*models.OrderItem) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error)
}

type orderItemRepo struct {
	db DB
}

func NewOrderItemRepo(db DB) OrderItemRepository {
	return &orderItemRepo{db: db}
}

// CreateBatch inserts all items in one statement.
func (r *orderItemRepo) CreateBatch(ctx context.Context, items []*models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `INSERT INTO orderitems (id, order_id, product_id, size_id, quantity) VALUES `
	args := make([]any, 0, len(items)*5)
	for i, item := range items {
		if i > 0 {
			query += ", "
		}
		base := i * 5
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, item.ID, item.OrderID, item.ProductID, item.SizeID, item.Quantity)
	}

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, size_id, quantity
		FROM orderitems
		WHERE order_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.SizeID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
