package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Schnretzl/e-commerce-api/models"
	"github.com/Schnretzl/e-commerce-api/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestPlacementTransaction_CommitsHeaderItemsAndStock(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
			AddRow(1, "Widget", 10.0, 5))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Transact(context.Background(), func(tx *gorm.DB) error {
		product, err := repo.LockProduct(context.Background(), tx, 1)
		if err != nil {
			return err
		}
		assert.Equal(t, 10.0, product.Price)
		assert.Equal(t, 5, product.Stock)

		order := &models.Order{
			CustomerID:           1,
			OrderDate:            orderDate,
			ExpectedDeliveryDate: orderDate.AddDate(0, 0, 5),
			TotalPrice:           30.0,
			OrderItems: []models.OrderItem{
				{ProductID: 1, Quantity: 3, Price: 10.0},
			},
		}
		if err := repo.CreateOrder(context.Background(), tx, order); err != nil {
			return err
		}
		return repo.DecrementStock(context.Background(), tx, 1, 3)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacementTransaction_RollsBackOnError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}))
	mock.ExpectRollback()

	err := repo.Transact(context.Background(), func(tx *gorm.DB) error {
		_, err := repo.LockProduct(context.Background(), tx, 42)
		return err
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	o, err := repo.FindByID(context.Background(), 99)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Nil(t, o)
}

func TestFindByCustomerID_PreloadsItems(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	orderRows := sqlmock.NewRows([]string{"id", "customer_id", "order_date", "expected_delivery_date", "total_price"}).
		AddRow(7, 1, orderDate, orderDate.AddDate(0, 0, 5), 30.0)
	itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
		AddRow(1, 7, 1, 3, 10.0)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs(uint(1)).
		WillReturnRows(orderRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(itemRows)

	orders, err := repo.FindByCustomerID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Len(t, orders[0].OrderItems, 1)
	assert.Equal(t, uint(1), orders[0].OrderItems[0].ProductID)
	assert.Equal(t, 10.0, orders[0].OrderItems[0].Price)
}
