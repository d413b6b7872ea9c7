package repositories

import (
	"context"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*models.Reply, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type replyRepo struct {
	db DB
}

func NewReplyRepo(db DB) ReplyRepository {
	return &replyRepo{db: db}
}

func (r *replyRepo) Create(ctx context.Context, reply *models.Reply) error {
	query := `
		INSERT INTO replies (id, review_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, reply.ID, reply.ReviewID, reply.UserID, reply.Body)
	return err
}

func (r *replyRepo) ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*models.Reply, error) {
	query := `
		SELECT id, review_id, user_id, body, created_at
		FROM replies
		WHERE review_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []*models.Reply
	for rows.Next() {
		reply := &models.Reply{}
		if err := rows.Scan(&reply.ID, &reply.ReviewID, &reply.UserID, &reply.Body, &reply.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}

func (r *replyRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM replies WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
