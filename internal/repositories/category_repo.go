package repositories

import (
	"context"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Category, error)
}

type categoryRepo struct {
	db DB
}

func NewCategoryRepo(db DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `INSERT INTO categories (id, name) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, category.ID, category.Name)
	return err
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	query := `SELECT id, name FROM categories WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, category.Name, category.ID)
	return err
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
