package service

import (
	"context"
	"sync"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/store"
)

// memStore is an in-memory store.Store for service tests. WithTx snapshots
// state before running fn and restores it on error, which is enough fidelity
// to exercise transactional service paths.
type memStore struct {
	mu       sync.Mutex
	users    map[string]domain.User // keyed by username
	products []domain.Product
	orders   []domain.Order
	posts    []domain.Post

	// Error injection hooks.
	createUserErr      error
	createOrderItemErr error
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]domain.User)}
}

func (m *memStore) Users() store.Users       { return (*memUsers)(m) }
func (m *memStore) Products() store.Products { return (*memProducts)(m) }
func (m *memStore) Orders() store.Orders     { return (*memOrders)(m) }
func (m *memStore) Posts() store.Posts       { return (*memPosts)(m) }

func (m *memStore) ApplyMigrations() error         { return nil }
func (m *memStore) Close() error                   { return nil }
func (m *memStore) Ping(ctx context.Context) error { return nil }

func (m *memStore) Tx(ctx context.Context) (store.Tx, error) {
	return &memTx{memStore: m, snapshot: m.copyState()}, nil
}

func (m *memStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := m.Tx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type memState struct {
	users    map[string]domain.User
	products []domain.Product
	orders   []domain.Order
	posts    []domain.Post
}

func (m *memStore) copyState() memState {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make(map[string]domain.User, len(m.users))
	for k, v := range m.users {
		users[k] = v
	}
	return memState{
		users:    users,
		products: append([]domain.Product(nil), m.products...),
		orders:   append([]domain.Order(nil), m.orders...),
		posts:    append([]domain.Post(nil), m.posts...),
	}
}

type memTx struct {
	*memStore
	snapshot memState
}

func (t *memTx) Commit() error { return nil }

func (t *memTx) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.users = t.snapshot.users
	t.products = t.snapshot.products
	t.orders = t.snapshot.orders
	t.posts = t.snapshot.posts
	return nil
}

type memUsers memStore

func (m *memUsers) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (m *memUsers) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) CreateUser(ctx context.Context, u domain.User) error {
	if m.createUserErr != nil {
		return m.createUserErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Username]; ok {
		return store.ErrAlreadyExists
	}
	m.users[u.Username] = u
	return nil
}

type memProducts memStore

func (m *memProducts) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Product(nil), m.products...), nil
}

func (m *memProducts) CreateProduct(ctx context.Context, p domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, p)
	return nil
}

type memOrders memStore

func (m *memOrders) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) CreateOrder(ctx context.Context, o domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.Items = nil // items arrive via CreateOrderItem
	m.orders = append(m.orders, o)
	return nil
}

func (m *memOrders) CreateOrderItem(ctx context.Context, orderID string, item domain.OrderItem) error {
	if m.createOrderItemErr != nil {
		return m.createOrderItemErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			m.orders[i].Items = append(m.orders[i].Items, item)
			return nil
		}
	}
	return store.ErrNotFound
}

type memPosts memStore

func (m *memPosts) ListPosts(ctx context.Context) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Post(nil), m.posts...), nil
}

func (m *memPosts) CreatePost(ctx context.Context, p domain.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, p)
	return nil
}
