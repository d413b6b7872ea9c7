package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the status every new order starts in. The column
// itself is free-form text; the admin status endpoint may write any
// non-empty string.
const OrderStatusPending = "Pending"

type Order struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	OrderStatus string    `json:"order_status" db:"order_status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
