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

func TestReviewIsUniquePerProductAndUser(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	reviews := services.NewReviewService(db)
	ctx := context.Background()

	input := models.ReviewInput{ProductID: product.ID, Comment: "Great", Rating: 5}
	review, err := reviews.Create(ctx, alice.ID, input)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, review.UserID)

	_, err = reviews.Create(ctx, alice.ID, input)
	assert.ErrorIs(t, err, services.ErrDuplicateReview)

	_, err = reviews.Create(ctx, bob.ID, input)
	assert.NoError(t, err)

	_, err = reviews.Create(ctx, bob.ID, models.ReviewInput{ProductID: 9999, Comment: "?", Rating: 1})
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestReviewMutationsAreOwnerOnly(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	category := testutil.CreateCategory(t, db, "Books")
	product := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	reviews := services.NewReviewService(db)
	ctx := context.Background()

	review, err := reviews.Create(ctx, alice.ID, models.ReviewInput{ProductID: product.ID, Comment: "Good", Rating: 4})
	require.NoError(t, err)

	update := models.ReviewInput{ProductID: product.ID, Comment: "Meh", Rating: 2}
	_, err = reviews.Update(ctx, bob.ID, review.ID, update)
	assert.ErrorIs(t, err, services.ErrNotOwner)
	assert.ErrorIs(t, reviews.Delete(ctx, bob.ID, review.ID), services.ErrNotOwner)

	updated, err := reviews.Update(ctx, alice.ID, review.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Meh", updated.Comment)
	assert.EqualValues(t, 2, updated.Rating)

	require.NoError(t, reviews.Delete(ctx, alice.ID, review.ID))
	_, err = reviews.Get(ctx, review.ID)
	assert.ErrorIs(t, err, services.ErrReviewNotFound)
}

func TestReviewUpdateCannotDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	category := testutil.CreateCategory(t, db, "Books")
	first := testutil.CreateProduct(t, db, category.ID, "Go", "30.00")
	second := testutil.CreateProduct(t, db, category.ID, "Rust", "35.00")
	reviews := services.NewReviewService(db)
	ctx := context.Background()

	_, err := reviews.Create(ctx, alice.ID, models.ReviewInput{ProductID: first.ID, Comment: "A", Rating: 5})
	require.NoError(t, err)
	review, err := reviews.Create(ctx, alice.ID, models.ReviewInput{ProductID: second.ID, Comment: "B", Rating: 3})
	require.NoError(t, err)

	_, err = reviews.Update(ctx, alice.ID, review.ID, models.ReviewInput{ProductID: first.ID, Comment: "B", Rating: 3})
	assert.ErrorIs(t, err, services.ErrDuplicateReview)
}
