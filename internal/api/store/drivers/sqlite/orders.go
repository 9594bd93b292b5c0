package sqlite

import (
	"context"
	"database/sql"

	"github.com/shkapi/storefront/internal/api/domain"
)

type ordersRepo struct {
	db dbtx
}

const listOrdersByUserSQL = `
SELECT o.id, o.user_id, o.created_at, i.product_id, i.quantity
FROM orders o
LEFT JOIN order_items i ON i.order_id = o.id
WHERE o.user_id = ?
ORDER BY o.created_at DESC, o.id DESC`

func (r *ordersRepo) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			o         domain.Order
			productID sql.NullString
			quantity  sql.NullInt64
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt, &productID, &quantity); err != nil {
			return nil, err
		}

		// Rows arrive grouped by order id; start a new order when it changes.
		if len(orders) == 0 || orders[len(orders)-1].ID != o.ID {
			o.Items = []domain.OrderItem{}
			orders = append(orders, o)
		}
		if productID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, domain.OrderItem{
				ProductID: productID.String,
				Quantity:  int(quantity.Int64),
			})
		}
	}
	return orders, rows.Err()
}

const createOrderSQL = `
INSERT INTO orders (id, user_id, created_at)
VALUES (?, ?, ?)`

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	_, err := r.db.ExecContext(ctx, createOrderSQL, o.ID, o.UserID, o.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const createOrderItemSQL = `
INSERT INTO order_items (order_id, product_id, quantity)
VALUES (?, ?, ?)`

func (r *ordersRepo) CreateOrderItem(ctx context.Context, orderID string, item domain.OrderItem) error {
	_, err := r.db.ExecContext(ctx, createOrderItemSQL, orderID, item.ProductID, item.Quantity)
	return err
}
