package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))

	return repo.New(db)
}

func createProduct(t *testing.T, r *repo.GormRepo, name, category, brand, price string) *models.Product {
	t.Helper()

	prod := &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		StockStatus: models.StockInStock,
		Category:    category,
		Brand:       brand,
		Images:      []string{"https://example.com/" + name + ".jpg"},
	}
	require.NoError(t, r.DB.Create(prod).Error)
	return prod
}

func createUser(t *testing.T, r *repo.GormRepo, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		Role:         models.RoleCustomer,
		Name:         username,
	}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}
