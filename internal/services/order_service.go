package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"threadmart/internal/models"
	"threadmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderServiceInterface defines the interface for order operations.
type OrderServiceInterface interface {
	// PlaceOrder converts the user's cart into an order. The cart read,
	// order insert, item fan-out and cart clear run in one transaction:
	// either everything commits or nothing does.
	PlaceOrder(ctx context.Context, userID uuid.UUID) (*OrderConfirmation, error)
	// CreateOrder places an order from an explicit item list, re-validating
	// every product and size reference. It never touches the cart.
	CreateOrder(ctx context.Context, userID uuid.UUID, items []OrderItemInput) (*OrderConfirmation, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*OrderConfirmation, error)
	GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderConfirmation, error)
	ListAllOrders(ctx context.Context, limit, offset int) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

// OrderItemInput is one requested line in an explicit-item order.
type OrderItemInput struct {
	ProductID uuid.UUID
	SizeID    *uuid.UUID
	Quantity  int
}

// OrderConfirmation pairs an order with its items.
type OrderConfirmation struct {
	Order      *models.Order       `json:"order"`
	OrderItems []*models.OrderItem `json:"order_items"`
}

type orderService struct {
	tx         repositories.TxManager
	orderRepo  repositories.OrderRepository
	itemRepo   repositories.OrderItemRepository
	productRepo repositories.ProductRepository
	sizeRepo   repositories.SizeRepository
}

// NewOrderService creates a new order service instance.
func NewOrderService(tx repositories.TxManager, orderRepo repositories.OrderRepository, itemRepo repositories.OrderItemRepository, productRepo repositories.ProductRepository, sizeRepo repositories.SizeRepository) OrderServiceInterface {
	return &orderService{
		tx:          tx,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		sizeRepo:    sizeRepo,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID) (*OrderConfirmation, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	var out *OrderConfirmation

	err := s.tx.WithinTx(ctx, func(r repositories.TxRepos) error {
		// Lock the cart rows so two placements for the same user cannot
		// both convert the same lines; the loser sees an empty cart.
		lines, err := r.Carts().ListByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order := &models.Order{
			ID:          uuid.New(),
			UserID:      userID,
			OrderStatus: models.OrderStatusPending,
			CreatedAt:   time.Now().UTC(),
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}

		// One order item per cart line, product/size/quantity carried over
		// verbatim. Validation, if any, happened at cart-add time.
		items := make([]*models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, &models.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: line.ProductID,
				SizeID:    line.SizeID,
				Quantity:  line.Quantity,
			})
		}
		if err := r.OrderItems().CreateBatch(ctx, items); err != nil {
			return err
		}

		if err := r.Carts().ClearByUser(ctx, userID); err != nil {
			return err
		}

		out = &OrderConfirmation{Order: order, OrderItems: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, inputs []OrderItemInput) (*OrderConfirmation, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	// Re-validate every reference before writing anything, unlike the
	// cart-based flow.
	for i, in := range inputs {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: items[%d].quantity must be at least 1", ErrValidation, i)
		}
		if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.ProductID)
			}
			return nil, err
		}
		if in.SizeID != nil {
			if _, err := s.sizeRepo.GetByID(ctx, *in.SizeID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, fmt.Errorf("%w: size %s", ErrNotFound, *in.SizeID)
				}
				return nil, err
			}
			linked, err := s.productRepo.SizeLinked(ctx, in.ProductID, *in.SizeID)
			if err != nil {
				return nil, err
			}
			if !linked {
				return nil, fmt.Errorf("%w: product %s is not offered in size %s", ErrValidation, in.ProductID, *in.SizeID)
			}
		}
	}

	var out *OrderConfirmation

	err := s.tx.WithinTx(ctx, func(r repositories.TxRepos) error {
		order := &models.Order{
			ID:          uuid.New(),
			UserID:      userID,
			OrderStatus: models.OrderStatusPending,
			CreatedAt:   time.Now().UTC(),
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}

		items := make([]*models.OrderItem, 0, len(inputs))
		for _, in := range inputs {
			items = append(items, &models.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: in.ProductID,
				SizeID:    in.SizeID,
				Quantity:  in.Quantity,
			})
		}
		if err := r.OrderItems().CreateBatch(ctx, items); err != nil {
			return err
		}

		out = &OrderConfirmation{Order: order, OrderItems: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*OrderConfirmation, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	confirmations := make([]*OrderConfirmation, 0, len(orders))
	for _, order := range orders {
		items, err := s.itemRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		confirmations = append(confirmations, &OrderConfirmation{Order: order, OrderItems: items})
	}
	return confirmations, nil
}

func (s *orderService) GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderConfirmation, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}
	// Other users' orders do not exist as far as the caller is concerned.
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}

	items, err := s.itemRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderConfirmation{Order: order, OrderItems: items}, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	return s.orderRepo.List(ctx, limit, offset)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	if status == "" {
		return fmt.Errorf("%w: order_status is required", ErrValidation)
	}
	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	return nil
}
