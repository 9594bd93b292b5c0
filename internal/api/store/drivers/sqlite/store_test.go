package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/store"
	"github.com/shkapi/storefront/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "store_test.db")
	st, err := NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestUser(username string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz0123456789abcdefghijklmnopqr",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUsersRepo_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newTestUser("alice")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)

	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = st.Users().GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersRepo_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Users().CreateUser(ctx, newTestUser("bob")))

	// Same username, different id: the UNIQUE constraint must reject it.
	err := st.Users().CreateUser(ctx, newTestUser("bob"))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestOrdersRepo_RoundTripWithItems(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newTestUser("carol")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	p := domain.Product{
		ID:        idx.New().String(),
		Name:      "Desk lamp",
		Price:     24.50,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Products().CreateProduct(ctx, p))

	o := domain.Order{
		ID:        idx.New().String(),
		UserID:    u.ID,
		CreatedAt: time.Now().UTC(),
	}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Orders().CreateOrder(ctx, o); err != nil {
			return err
		}
		return tx.Orders().CreateOrderItem(ctx, o.ID, domain.OrderItem{
			ProductID: p.ID,
			Quantity:  3,
		})
	})
	require.NoError(t, err)

	orders, err := st.Orders().ListOrdersByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, p.ID, orders[0].Items[0].ProductID)
	assert.Equal(t, 3, orders[0].Items[0].Quantity)

	// Other users never see this order.
	orders, err = st.Orders().ListOrdersByUser(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_WithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newTestUser("dave")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		// Duplicate insert fails the transaction; the first insert must not
		// survive.
		return tx.Users().CreateUser(ctx, newTestUser("dave"))
	})
	require.Error(t, err)

	_, err = st.Users().GetUserByUsername(ctx, "dave")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
