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

// 评价提交后均分已变，商品详情缓存必须失效
func TestReviewCreate_RefreshesRatingAndInvalidatesCache(t *testing.T) {
	gdb, mock := newTestDB(t)
	cacheSpy := &fakeProductCache{}
	svc := &service.ReviewService{
		DB:           gdb,
		ReviewDAO:    dao.NewReview(gdb),
		ProductDAO:   dao.NewProduct(gdb),
		ProductCache: cacheSpy,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `order_items` JOIN orders ON orders.id = order_items.order_id WHERE orders.user_id = ? AND order_items.product_id = ?")).
		WithArgs("user-1", int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reviews`")).
		WithArgs(int64(77), "user-1", 5, "很香", "早餐冲着喝", true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET `rating`=")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.Create(base.Background(), "user-1", &types.CreateReviewRequest{
		ProductID: 77,
		Rating:    5,
		Title:     "很香",
		Content:   "早餐冲着喝",
	})
	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, []int64{77}, cacheSpy.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
