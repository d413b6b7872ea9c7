package repositories

import (
	"context"

	"github.com/google/uuid"
)

type SuperuserRepository interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID uuid.UUID) error
	Remove(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context) ([]uuid.UUID, error)
}

type superuserRepo struct {
	db DB
}

func NewSuperuserRepo(db DB) SuperuserRepository {
	return &superuserRepo{db: db}
}

func (r *superuserRepo) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM superusers WHERE user_id = $1)`
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *superuserRepo) Add(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO superusers (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *superuserRepo) Remove(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM superusers WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *superuserRepo) List(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT user_id FROM superusers`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
