// Package testutil builds throwaway databases and fixtures for tests.
package testutil

import (
	"testing"

	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := initializers.OpenDatabase("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, initializers.Migrate(db))
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "not-a-hash", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateStaff(t testing.TB, db *gorm.DB, username string) models.User {
	t.Helper()
	user := CreateUser(t, db, username)
	require.NoError(t, db.Model(&user).Update("is_staff", true).Error)
	user.IsStaff = true
	return user
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func CreateProduct(t testing.TB, db *gorm.DB, categoryID uint, name, price string) models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		Description:   name + " description",
		Price:         models.MustMoney(price),
		StockQuantity: 10,
		CategoryID:    categoryID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
