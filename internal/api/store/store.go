package store

import (
	"context"
	"errors"

	"github.com/shkapi/storefront/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Products() Products
	Orders() Orders
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., an order
	// plus its line items). The caller MUST call Commit() or Rollback() on
	// the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and duplicate checks. Absence
	// is a normal outcome and surfaces as ErrNotFound, never as a failure.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new credential record (id is provided by app via
	// ULID). The username column carries a UNIQUE constraint; a duplicate
	// insert returns ErrAlreadyExists so concurrent registrations can never
	// both succeed.
	CreateUser(ctx context.Context, u domain.User) error
}

type Products interface {
	// ListProducts returns all products, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct inserts a new product (id is ULID).
	CreateProduct(ctx context.Context, p domain.Product) error
}

type Orders interface {
	// ListOrdersByUser returns the user's orders with their line items,
	// newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// CreateOrder inserts the order row only. Line items go through
	// CreateOrderItem; callers wanting atomicity run both inside WithTx.
	CreateOrder(ctx context.Context, o domain.Order) error

	// CreateOrderItem inserts a single line item for an existing order.
	CreateOrderItem(ctx context.Context, orderID string, item domain.OrderItem) error
}

type Posts interface {
	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// CreatePost inserts a new post (id is ULID).
	CreatePost(ctx context.Context, p domain.Post) error
}
