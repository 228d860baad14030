package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// holdLookups parks the first n queries on table until all n have run, so
// that concurrent callers all miss the row before any of them inserts it.
func holdLookups(t *testing.T, db *gorm.DB, table string, n int) {
	t.Helper()
	var mu sync.Mutex
	arrived := 0
	release := make(chan struct{})
	err := db.Callback().Query().After("gorm:query").Register("test:hold_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table != table {
			return
		}
		mu.Lock()
		arrived++
		current := arrived
		if current == n {
			close(release)
		}
		mu.Unlock()
		if current > n {
			return
		}
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
	})
	require.NoError(t, err)
}

// concurrently runs fn twice at the same time and returns both errors.
func concurrently(fn func() error) []error {
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn()
		}()
	}
	wg.Wait()
	return errs
}

func TestCartAddProductMergesQuantities(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	carts := services.NewCartService(db)
	ctx := context.Background()

	require.NoError(t, carts.AddProduct(ctx, user.ID, product.ID, 2))
	require.NoError(t, carts.AddProduct(ctx, user.ID, product.ID, 3))

	cart, err := carts.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddProductValidation(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	carts := services.NewCartService(db)
	ctx := context.Background()

	assert.ErrorIs(t, carts.AddProduct(ctx, user.ID, 9999, 1), services.ErrProductNotFound)
	assert.ErrorIs(t, carts.AddProduct(ctx, user.ID, product.ID, 0), services.ErrInvalidQuantity)
}

func TestCartRemoveProduct(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	other := testutil.CreateProduct(t, db, category.ID, "Rust", "35.00")
	carts := services.NewCartService(db)
	ctx := context.Background()

	require.NoError(t, carts.AddProduct(ctx, user.ID, product.ID, 5))

	require.NoError(t, carts.RemoveProduct(ctx, user.ID, product.ID, 2))
	cart, err := carts.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	require.NoError(t, carts.RemoveProduct(ctx, user.ID, other.ID, 1), "absent line is a no-op")

	require.NoError(t, carts.RemoveProduct(ctx, user.ID, product.ID, 3))
	cart, err = carts.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartClear(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	carts := services.NewCartService(db)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		product := testutil.CreateProduct(t, db, category.ID, name, "1.00")
		require.NoError(t, carts.AddProduct(ctx, user.ID, product.ID, 1))
	}

	require.NoError(t, carts.Clear(ctx, user.ID))
	require.NoError(t, carts.Clear(ctx, user.ID))

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCartIsPerUser(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	carts := services.NewCartService(db)
	ctx := context.Background()

	require.NoError(t, carts.AddProduct(ctx, alice.ID, product.ID, 1))

	aliceCart, err := carts.Get(ctx, alice.ID)
	require.NoError(t, err)
	bobCart, err := carts.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotEqual(t, aliceCart.ID, bobCart.ID)
	assert.Len(t, aliceCart.Items, 1)
	assert.Empty(t, bobCart.Items)
}

func TestCartConcurrentAddsOfNewProductMerge(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	carts := services.NewCartService(db)
	ctx := context.Background()
	_, err := carts.Get(ctx, user.ID)
	require.NoError(t, err)

	holdLookups(t, db, "cart_items", 2)
	for _, err := range concurrently(func() error { return carts.AddProduct(ctx, user.ID, product.ID, 1) }) {
		assert.NoError(t, err)
	}

	cart, err := carts.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartConcurrentFirstUseSharesOneCart(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	carts := services.NewCartService(db)
	ctx := context.Background()

	holdLookups(t, db, "shopping_carts", 2)
	ids := make(chan uint, 2)
	errs := concurrently(func() error {
		cart, err := carts.Get(ctx, user.ID)
		ids <- cart.ID
		return err
	})
	for _, err := range errs {
		assert.NoError(t, err)
	}
	first, second := <-ids, <-ids
	assert.NotZero(t, first)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&models.ShoppingCart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
