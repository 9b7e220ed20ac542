package service_test

import (
	"GrainMall/dao"
	"GrainMall/service"
	"GrainMall/types"
	base "context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// 价格区间入参单位是分，必须原样落到 SQL，不能再 ×100
func TestProductList_PriceBoundsPassThroughInCents(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.ProductService{DB: gdb, ProductDAO: dao.NewProduct(gdb)}

	minPrice, maxPrice := int64(1000), int64(5000)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `products` WHERE active = ? AND price >= ? AND price <= ?")).
		WithArgs(true, minPrice, maxPrice).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE active = ? AND price >= ? AND price <= ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "active"}).
			AddRow(1, "有机大麦粉", 1500, true))

	resp, err := svc.List(base.Background(), &types.ListProductsRequest{
		Limit:    20,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	assert.NoError(t, err)
	// 查询失败会降级为空页，Total 非零说明两条 SQL 都按分命中
	assert.Equal(t, int64(1), resp.Total)
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, int64(1500), resp.Products[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
