package services_test

import (
	"context"
	"testing"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddProductIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	wishlists := services.NewWishlistService(db)
	ctx := context.Background()

	created, err := wishlists.AddProduct(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = wishlists.AddProduct(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, created)

	wishlist, err := wishlists.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, wishlist.Items, 1)

	_, err = wishlists.AddProduct(ctx, user.ID, 9999)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestWishlistRemoveAndClear(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	first := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	second := testutil.CreateProduct(t, db, category.ID, "Rust", "35.00")
	wishlists := services.NewWishlistService(db)
	ctx := context.Background()

	for _, id := range []uint{first.ID, second.ID} {
		_, err := wishlists.AddProduct(ctx, user.ID, id)
		require.NoError(t, err)
	}

	require.NoError(t, wishlists.RemoveProduct(ctx, user.ID, first.ID))
	require.NoError(t, wishlists.RemoveProduct(ctx, user.ID, first.ID))
	wishlist, err := wishlists.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, second.ID, wishlist.Items[0].ProductID)

	require.NoError(t, wishlists.Clear(ctx, user.ID))
	wishlist, err = wishlists.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)
}

func TestWishlistConcurrentAddsKeepOneItem(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	wishlists := services.NewWishlistService(db)
	ctx := context.Background()
	_, err := wishlists.Get(ctx, user.ID)
	require.NoError(t, err)

	holdLookups(t, db, "wishlist_items", 2)
	added := make(chan bool, 2)
	errs := concurrently(func() error {
		ok, err := wishlists.AddProduct(ctx, user.ID, product.ID)
		added <- ok
		return err
	})
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.NotEqual(t, <-added, <-added, "exactly one add creates the item")

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
