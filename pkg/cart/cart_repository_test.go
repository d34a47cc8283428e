package cart

import (
	"context"
	"testing"

	"SmartCart-Backend/entities"
	"SmartCart-Backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entities.CartItem{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func TestAddToCartOverwritesQuantity(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCartService(NewCartRepository(db), nil)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "ana@example.com")
	productA := testutil.SeedProduct(t, db, "Rice", "grains", "10.00")

	require.NoError(t, svc.AddToCart(ctx, user.ID.String(), productA.ID.String(), 3))
	require.NoError(t, svc.AddToCart(ctx, user.ID.String(), productA.ID.String(), 5))

	assert.Equal(t, int64(1), countRows(t, db, user.ID.String()))

	items, err := svc.GetCartItems(ctx, user.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Rice", items[0].Name)
	require.NotNil(t, items[0].CartID)
}

func TestAddToCartDefaultsToOneUnit(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCartService(NewCartRepository(db), nil)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "ana@example.com")
	p := testutil.SeedProduct(t, db, "Beans", "grains", "7.50")

	require.NoError(t, svc.AddToCart(ctx, user.ID.String(), p.ID.String(), 0))

	items, err := svc.GetCartItems(ctx, user.ID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartIsPerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCartRepository(db)
	svc := NewCartService(repo, nil)
	ctx := context.Background()

	ana := testutil.SeedUser(t, db, "ana@example.com")
	bia := testutil.SeedUser(t, db, "bia@example.com")
	rice := testutil.SeedProduct(t, db, "Rice", "grains", "10.00")
	soap := testutil.SeedProduct(t, db, "Soap", "hygiene", "2.00")

	require.NoError(t, svc.AddToCart(ctx, ana.ID.String(), rice.ID.String(), 2))
	require.NoError(t, svc.AddToCart(ctx, ana.ID.String(), soap.ID.String(), 1))
	require.NoError(t, svc.AddToCart(ctx, bia.ID.String(), rice.ID.String(), 4))

	t.Run("update quantity touches one row", func(t *testing.T) {
		require.NoError(t, svc.UpdateQuantity(ctx, ana.ID.String(), rice.ID.String(), 7))

		items, err := svc.GetCartItems(ctx, ana.ID.String())
		require.NoError(t, err)
		quantities := map[string]int{}
		for _, item := range items {
			quantities[item.Name] = item.Quantity
		}
		assert.Equal(t, map[string]int{"Rice": 7, "Soap": 1}, quantities)

		items, err = svc.GetCartItems(ctx, bia.ID.String())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("remove deletes the pair", func(t *testing.T) {
		require.NoError(t, svc.RemoveFromCart(ctx, ana.ID.String(), soap.ID.String()))
		assert.Equal(t, int64(1), countRows(t, db, ana.ID.String()))
	})

	t.Run("clear empties only the user's cart", func(t *testing.T) {
		require.NoError(t, svc.ClearCart(ctx, ana.ID.String()))
		assert.Equal(t, int64(0), countRows(t, db, ana.ID.String()))
		assert.Equal(t, int64(1), countRows(t, db, bia.ID.String()))
	})
}
