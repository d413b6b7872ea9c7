package models

import "github.com/google/uuid"

// OrderItem is an immutable record of one product/size/quantity committed
// to an order. Items are materialized 1:1 from cart lines at placement.
type OrderItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	OrderID   uuid.UUID  `json:"order_id" db:"order_id"`
	ProductID uuid.UUID  `json:"product_id" db:"product_id"`
	SizeID    *uuid.UUID `json:"size_id" db:"size_id"`
	Quantity  int        `json:"quantity" db:"quantity"`
}
