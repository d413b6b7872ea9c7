package services

import (
	"context"
	"fmt"

	"threadmart/internal/models"
	"threadmart/internal/repositories"

	"github.com/google/uuid"
)

type MessageServiceInterface interface {
	Submit(ctx context.Context, name, email, body string) (*models.Message, error)
	List(ctx context.Context, limit, offset int) ([]*models.Message, error)
}

type messageService struct {
	messageRepo repositories.MessageRepository
}

func NewMessageService(messageRepo repositories.MessageRepository) MessageServiceInterface {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) Submit(ctx context.Context, name, email, body string) (*models.Message, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrValidation)
	}

	message := &models.Message{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Body:  body,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context, limit, offset int) ([]*models.Message, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.messageRepo.List(ctx, limit, offset)
}
