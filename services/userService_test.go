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

func TestRegisterAndAuthenticate(t *testing.T) {
	db := testutil.NewDB(t)
	users := services.NewUserService(db)
	ctx := context.Background()

	user, err := users.Register(ctx, models.RegisterData{Username: "alice", Password: "correct horse", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", user.Password)
	assert.True(t, user.IsActive)

	_, err = users.Register(ctx, models.RegisterData{Username: "alice", Password: "another one"})
	assert.ErrorIs(t, err, services.ErrUserExists)

	authenticated, err := users.Authenticate(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)

	_, err = users.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = users.Authenticate(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthenticateRejectsInactiveUser(t *testing.T) {
	db := testutil.NewDB(t)
	users := services.NewUserService(db)
	ctx := context.Background()

	user, err := users.Register(ctx, models.RegisterData{Username: "bob", Password: "password123"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)

	_, err = users.Authenticate(ctx, "bob", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestCreateKeepsInactiveFlag(t *testing.T) {
	db := testutil.NewDB(t)
	users := services.NewUserService(db)

	created := models.User{Username: "dormant", Password: "not-a-hash", IsActive: false}
	require.NoError(t, db.Create(&created).Error)

	stored, err := users.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}
