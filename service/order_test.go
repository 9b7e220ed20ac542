package service_test

import (
	"GrainMall/dao"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/service"
	"GrainMall/types"
	base "context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	assert.NoError(t, err)
	return gdb, mock
}

func orderRows(orderID int64, userID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "status", "subtotal", "total"}).
		AddRow(orderID, userID, status, 10000, 10000)
}

func TestOrderGetById_OtherUsersOrderIsNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.OrderService{DB: gdb, OrderDAO: dao.NewOrder(gdb)}

	orderID := int64(42)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders` WHERE id = ?")).
		WillReturnRows(orderRows(orderID, "owner-1", "pending"))

	resp, err := svc.GetById(base.Background(), "intruder-2", orderID)
	assert.Nil(t, resp)

	var bizErr *response.BizError
	assert.ErrorAs(t, err, &bizErr)
	assert.Equal(t, response.KindNotFound, bizErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGetById_MissingOrderIsNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.OrderService{DB: gdb, OrderDAO: dao.NewOrder(gdb)}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}))

	_, err := svc.GetById(base.Background(), "user-1", 404)

	var bizErr *response.BizError
	assert.ErrorAs(t, err, &bizErr)
	assert.Equal(t, response.KindNotFound, bizErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatus_NonOwnerMerchantForbidden(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.OrderService{DB: gdb, OrderDAO: dao.NewOrder(gdb)}

	orderID := int64(42)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders` WHERE id = ?")).
		WillReturnRows(orderRows(orderID, "owner-1", "pending"))

	err := svc.UpdateStatus(base.Background(), "merchant-9", context.RoleMerchant, &types.UpdateOrderStatusRequest{ID: orderID, Status: "shipped"})

	var bizErr *response.BizError
	assert.ErrorAs(t, err, &bizErr)
	assert.Equal(t, response.KindForbidden, bizErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatus_AdminCanUpdateAnyOrder(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.OrderService{DB: gdb, OrderDAO: dao.NewOrder(gdb)}

	orderID := int64(42)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders` WHERE id = ?")).
		WillReturnRows(orderRows(orderID, "owner-1", "pending"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `orders` SET `status`=? WHERE id = ?")).
		WithArgs("confirmed", orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.UpdateStatus(base.Background(), "admin-1", context.RoleAdmin, &types.UpdateOrderStatusRequest{ID: orderID, Status: "confirmed"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatus_OwnerCanUpdate(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.OrderService{DB: gdb, OrderDAO: dao.NewOrder(gdb)}

	orderID := int64(42)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders` WHERE id = ?")).
		WillReturnRows(orderRows(orderID, "owner-1", "shipped"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `orders` SET `status`=? WHERE id = ?")).
		WithArgs("cancelled", orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.UpdateStatus(base.Background(), "owner-1", context.RoleUser, &types.UpdateOrderStatusRequest{ID: orderID, Status: "cancelled"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type fakeProductCache struct {
	deleted []int64
}

func (f *fakeProductCache) Del(ctx base.Context, productID int64) error {
	f.deleted = append(f.deleted, productID)
	return nil
}

func TestOrderCreate_TotalIdentityAndCartCleared(t *testing.T) {
	gdb, mock := newTestDB(t)
	cacheSpy := &fakeProductCache{}
	svc := &service.OrderService{
		DB:              gdb,
		OrderDAO:        dao.NewOrder(gdb),
		CartDAO:         dao.NewCart(gdb),
		ProductDAO:      dao.NewProduct(gdb),
		PromoDAO:        dao.NewPromo(gdb),
		NotificationDAO: dao.NewNotification(gdb),
		ProductCache:    cacheSpy,
	}

	// SAVE10: 九折码，小计 5000 分应抵扣 500 分
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `promo_codes` WHERE code = ? AND active = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "discount_type", "discount_value", "active"}).
			AddRow(9, "SAVE10", "percentage", 10, true))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock", "active"}).
			AddRow(77, "有机大麦粉", 2500, 10, true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET `stock`=stock - ? WHERE id = ? AND stock >= ?")).
		WithArgs(2, int64(77), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 订单头金额恒等式: 5000 + 200 + 500 - 500 = 5200
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `orders`")).
		WithArgs("user-1", sqlmock.AnyArg(), "pending",
			int64(5000), int64(200), int64(500), int64(500), int64(5200),
			"SAVE10", "credit_card", "pending",
			sqlmock.AnyArg(), sqlmock.AnyArg(), "", "", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `order_items`")).
		WithArgs(sqlmock.AnyArg(), int64(77), "有机大麦粉", 2, int64(2500), int64(5000), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `promo_codes` SET `current_uses`=current_uses + 1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// 下单成功同一事务内清空购物车
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `cart_items` WHERE user_id = ?")).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `notifications`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.Create(base.Background(), "user-1", &types.CreateOrderRequest{
		Items: []types.OrderLine{
			{ProductID: 77, Quantity: 2, Price: 25.00},
		},
		ShippingAddress: map[string]interface{}{"city": "杭州"},
		PaymentMethod:   "credit_card",
		PromoCode:       "SAVE10",
		Tax:             2.00,
		Shipping:        5.00,
	})
	assert.NoError(t, err)
	assert.NotZero(t, resp.OrderID)
	assert.Contains(t, resp.OrderNumber, "ORD-")
	// 事务提交后失效商品缓存
	assert.Equal(t, []int64{77}, cacheSpy.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreate_InsufficientStockRollsBack(t *testing.T) {
	gdb, mock := newTestDB(t)
	cacheSpy := &fakeProductCache{}
	svc := &service.OrderService{
		DB:              gdb,
		OrderDAO:        dao.NewOrder(gdb),
		CartDAO:         dao.NewCart(gdb),
		ProductDAO:      dao.NewProduct(gdb),
		PromoDAO:        dao.NewPromo(gdb),
		NotificationDAO: dao.NewNotification(gdb),
		ProductCache:    cacheSpy,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock", "active"}).
			AddRow(77, "有机大麦粉", 2500, 1, true))
	// 条件扣库存未命中，整单回滚
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `products` SET `stock`=stock - ? WHERE id = ? AND stock >= ?")).
		WithArgs(5, int64(77), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Create(base.Background(), "user-1", &types.CreateOrderRequest{
		Items: []types.OrderLine{
			{ProductID: 77, Quantity: 5, Price: 25.00},
		},
		ShippingAddress: map[string]interface{}{"city": "杭州"},
		PaymentMethod:   "credit_card",
	})

	var bizErr *response.BizError
	assert.ErrorAs(t, err, &bizErr)
	assert.Equal(t, response.KindBadRequest, bizErr.Kind)
	assert.Contains(t, bizErr.Msg, "库存不足")
	assert.Empty(t, cacheSpy.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
