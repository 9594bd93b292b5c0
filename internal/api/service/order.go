package service

import (
	"context"
	"time"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/store"
	"github.com/shkapi/storefront/pkg/idx"
)

type OrderService struct {
	Store store.Store
}

// ListOrders returns the caller's own orders, newest first. Ownership is
// enforced here by filtering on the authenticated user id; there is no
// cross-user access path.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.Store.Orders().ListOrdersByUser(ctx, userID)
}

// CreateOrder persists an order and its line items atomically. Either the
// whole order commits or nothing does.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	userID string,
	items []domain.OrderItem,
) (domain.Order, error) {
	o := domain.Order{
		ID:        idx.New().String(),
		UserID:    userID,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Orders().CreateOrder(ctx, o); err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Orders().CreateOrderItem(ctx, o.ID, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return o, nil
}
