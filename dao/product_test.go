package dao_test

import (
	"GrainMall/dao"
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProductDecrementStock_EnoughStock(t *testing.T) {
	gdb, mock := newMockDB(t)
	product := dao.NewProduct(gdb)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET `stock`=stock - ? WHERE id = ? AND stock >= ?")).
		WithArgs(3, int64(100), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := product.DecrementStock(context.Background(), gdb, 100, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDecrementStock_InsufficientStockAffectsNoRows(t *testing.T) {
	gdb, mock := newMockDB(t)
	product := dao.NewProduct(gdb)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET `stock`=stock - ? WHERE id = ? AND stock >= ?")).
		WithArgs(999, int64(100), 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := product.DecrementStock(context.Background(), gdb, 100, 999)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductList_PriceRangeFilter(t *testing.T) {
	gdb, mock := newMockDB(t)
	product := dao.NewProduct(gdb)

	minPrice, maxPrice := int64(1000), int64(5000)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `products` WHERE active = ? AND price >= ? AND price <= ?")).
		WithArgs(true, minPrice, maxPrice).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE active = ? AND price >= ? AND price <= ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "active"}).
			AddRow(1, "有机大麦粉", 1500, true).
			AddRow(2, "黑麦全粉", 4200, true))

	products, total, err := product.List(context.Background(), 20, 0, dao.ProductFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)
	assert.Equal(t, int64(1500), products[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
