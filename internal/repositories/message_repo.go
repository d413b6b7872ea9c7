package repositories

import (
	"context"

	"threadmart/internal/models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context, limit, offset int) ([]*models.Message, error)
}

type messageRepo struct {
	db DB
}

func NewMessageRepo(db DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, name, email, body, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, message.ID, message.Name, message.Email, message.Body)
	return err
}

func (r *messageRepo) List(ctx context.Context, limit, offset int) ([]*models.Message, error) {
	query := `
		SELECT id, name, email, body, created_at
		FROM messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{}
		if err := rows.Scan(&message.ID, &message.Name, &message.Email, &message.Body, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
