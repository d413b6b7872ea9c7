package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageObject *string   `json:"image_object,omitempty" db:"image_object"`
	ImageURL    string    `json:"image_url,omitempty" db:"-"`
	Categories  []*Category `json:"categories,omitempty" db:"-"`
	Sizes       []*Size     `json:"sizes,omitempty" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductFilter holds list/filter criteria for catalog queries.
type ProductFilter struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	SizeID     *uuid.UUID `json:"size_id,omitempty"`
	Query      string     `json:"query,omitempty"`
	Limit      int        `json:"limit,omitempty"`
	Offset     int        `json:"offset,omitempty"`
}
