package dao_test

import (
	"GrainMall/dao"
	"GrainMall/models"
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func TestCartUpdateQuantity_PositiveQuantityUpdates(t *testing.T) {
	gdb, mock := newMockDB(t)
	cart := dao.NewCart(gdb)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `cart_items` SET `quantity`=? WHERE id = ? AND user_id = ?")).
		WithArgs(5, int64(7), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cart.UpdateQuantity(context.Background(), 7, "user-1", 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartUpdateQuantity_ZeroQuantityDeletes(t *testing.T) {
	gdb, mock := newMockDB(t)
	cart := dao.NewCart(gdb)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `cart_items` WHERE id = ? AND user_id = ?")).
		WithArgs(int64(7), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cart.UpdateQuantity(context.Background(), 7, "user-1", 0)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRemove_ScopedToOwner(t *testing.T) {
	gdb, mock := newMockDB(t)
	cart := dao.NewCart(gdb)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `cart_items` WHERE id = ? AND user_id = ?")).
		WithArgs(int64(7), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cart.Remove(context.Background(), 7, "user-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartClear(t *testing.T) {
	gdb, mock := newMockDB(t)
	cart := dao.NewCart(gdb)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `cart_items` WHERE user_id = ?")).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := cart.Clear(context.Background(), gdb, "user-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 重复加购同一商品走唯一索引累加数量，而不是覆盖
func TestCartUpsert_DuplicateAddSumsQuantity(t *testing.T) {
	gdb, mock := newMockDB(t)
	cart := dao.NewCart(gdb)

	mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE `quantity`=quantity + VALUES(quantity)")).
		WithArgs("user-1", int64(77), 2, sqlmock.AnyArg(), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := cart.Upsert(context.Background(), &models.CartItem{
		ID:        11,
		UserID:    "user-1",
		ProductID: 77,
		Quantity:  2,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
