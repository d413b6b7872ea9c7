package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one pending purchase intent. Repeated adds for the same
// (user, product, size) append new rows rather than incrementing quantity.
type CartItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	ProductID uuid.UUID  `json:"product_id" db:"product_id"`
	SizeID    *uuid.UUID `json:"size_id" db:"size_id"`
	Quantity  int        `json:"quantity" db:"quantity"`
	AddedAt   time.Time  `json:"added_at" db:"added_at"`
}
