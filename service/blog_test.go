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

// 署名取用户展示名，不能把用户ID落进 author 列
func TestBlogCreate_AuthorIsDisplayName(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.BlogService{DB: gdb, BlogDAO: dao.NewBlog(gdb), UserDAO: dao.NewUsers(gdb)}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("admin-1", "王小麦"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `blog_posts`")).
		WithArgs("大麦新品上市", "barley-launch", "", "正文", "", "",
			"王小麦", true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Create(base.Background(), "admin", "admin-1", &types.CreateBlogPostRequest{
		Title:     "大麦新品上市",
		Slug:      "barley-launch",
		Content:   "正文",
		Published: true,
	})
	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 用户记录缺失时署名兜底为 Admin
func TestBlogCreate_AuthorFallsBackToAdmin(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := &service.BlogService{DB: gdb, BlogDAO: dao.NewBlog(gdb), UserDAO: dao.NewUsers(gdb)}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `blog_posts`")).
		WithArgs("大麦新品上市", "barley-launch", "", "正文", "", "",
			"Admin", true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Create(base.Background(), "admin", "admin-1", &types.CreateBlogPostRequest{
		Title:     "大麦新品上市",
		Slug:      "barley-launch",
		Content:   "正文",
		Published: true,
	})
	assert.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
