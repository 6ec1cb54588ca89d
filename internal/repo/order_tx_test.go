package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/models"
)

func newMockRepo(t *testing.T) (*GormRepo, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return New(db), mock
}

// A failure while inserting item rows must roll the header back too: no
// order may become visible whose items do not reconcile with its total.
func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)

	order := &models.Order{
		UserID:          1,
		Status:          models.OrderPending,
		TotalAmount:     decimal.RequireFromString("259.98"),
		PaymentMethod:   models.PaymentCOD,
		PaymentStatus:   models.PaymentPending,
		DeliveryMethod:  models.DeliveryHome,
		DeliveryAddress: "12 Baker Street",
	}
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("129.99")},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(fmt.Errorf("connection reset during insert"))
	mock.ExpectRollback()

	_, err := r.CreateOrder(context.Background(), order, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderCommitsHeaderAndItems(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)

	order := &models.Order{
		UserID:          1,
		Status:          models.OrderPending,
		TotalAmount:     decimal.RequireFromString("89.50"),
		PaymentMethod:   models.PaymentBkash,
		PaymentStatus:   models.PaymentPending,
		DeliveryMethod:  models.DeliveryStorePickup,
		DeliveryAddress: "store 4",
	}
	items := []models.OrderItem{
		{ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("89.50")},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := r.CreateOrder(context.Background(), order, items)
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)
	assert.Equal(t, uint(9), items[0].OrderID)

	require.NoError(t, mock.ExpectationsWereMet())
}

// An order whose every line was skipped still persists a header with a zero
// total and no item rows.
func TestCreateOrderWithNoItems(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)

	order := &models.Order{
		UserID:          1,
		Status:          models.OrderPending,
		TotalAmount:     decimal.Zero,
		PaymentMethod:   models.PaymentCOD,
		PaymentStatus:   models.PaymentPending,
		DeliveryMethod:  models.DeliveryHome,
		DeliveryAddress: "12 Baker Street",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	created, err := r.CreateOrder(context.Background(), order, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ID)
	assert.Empty(t, created.Items)

	require.NoError(t, mock.ExpectationsWereMet())
}
