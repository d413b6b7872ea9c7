package repositories

import (
	"context"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type SizeRepository interface {
	Create(ctx context.Context, size *models.Size) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Size, error)
	Update(ctx context.Context, size *models.Size) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Size, error)
}

type sizeRepo struct {
	db DB
}

func NewSizeRepo(db DB) SizeRepository {
	return &sizeRepo{db: db}
}

func (r *sizeRepo) Create(ctx context.Context, size *models.Size) error {
	query := `INSERT INTO sizes (id, name) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, size.ID, size.Name)
	return err
}

func (r *sizeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Size, error) {
	size := &models.Size{}
	query := `SELECT id, name FROM sizes WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&size.ID, &size.Name)
	if err != nil {
		return nil, err
	}
	return size, nil
}

func (r *sizeRepo) Update(ctx context.Context, size *models.Size) error {
	query := `UPDATE sizes SET name = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, size.Name, size.ID)
	return err
}

func (r *sizeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sizes WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *sizeRepo) List(ctx context.Context) ([]*models.Size, error) {
	query := `SELECT id, name FROM sizes ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sizes []*models.Size
	for rows.Next() {
		size := &models.Size{}
		if err := rows.Scan(&size.ID, &size.Name); err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}
