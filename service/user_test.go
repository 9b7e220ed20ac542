package service_test

import (
	"GrainMall/dao"
	"GrainMall/service"
	base "context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// 首次访问落库时未同步过邮箱，email 必须写 NULL 而不是空串，
// 否则多个未同步用户会在唯一索引上互撞，upsert 还会改写别人那行
func TestUserMe_ProvisionWritesNullEmail(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.UserService{DB: gdb, UserDAO: dao.NewUsers(gdb)}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `users` .+ ON DUPLICATE KEY UPDATE `name`=VALUES\\(`name`\\),`email`=VALUES\\(`email`\\)").
		WithArgs("u-7", "", nil, "", "user", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := svc.Me(base.Background(), "u-7", "user")
	assert.NoError(t, err)
	assert.Equal(t, "u-7", user.ID)
	assert.Nil(t, user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
