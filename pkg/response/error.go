package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误类别，供前端做机器判断
const (
	KindBadRequest   = "BAD_REQUEST"
	KindUnauthorized = "UNAUTHORIZED"
	KindForbidden    = "FORBIDDEN"
	KindNotFound     = "NOT_FOUND"
	KindInternal     = "INTERNAL"
)

type BizError struct {
	Code int
	Kind string
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Kind: kindOf(code),
		Msg:  msg,
	}
}

// NotFound 资源不存在
func NotFound(msg string) *BizError {
	return &BizError{Code: http.StatusNotFound, Kind: KindNotFound, Msg: msg}
}

// Forbidden 角色/归属校验失败
func Forbidden(msg string) *BizError {
	return &BizError{Code: http.StatusForbidden, Kind: KindForbidden, Msg: msg}
}

func kindOf(code int) string {
	switch code {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindInternal
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Kind: kindOf(httpStatus),
		Msg:  msg,
		Data: nil,
	})
}
