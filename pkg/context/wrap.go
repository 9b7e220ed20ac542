package context

import (
	"GrainMall/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// 角色取值与 users.role 枚举一致
const (
	RoleUser     = "user"
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Kind: be.Kind,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Kind: response.KindInternal,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", errors.New("user_id 不存在")
	}

	uid, ok := v.(string)
	if !ok || uid == "" {
		return "", errors.New("user_id 类型错误")
	}

	return uid, nil
}

// GetRole 未登录请求返回普通用户角色
func GetRole(c *gin.Context) string {
	v, ok := c.Get(CtxRole)
	if !ok {
		return RoleUser
	}
	role, ok := v.(string)
	if !ok || role == "" {
		return RoleUser
	}
	return role
}

// IsStaff 商家或管理员
func IsStaff(role string) bool {
	return role == RoleMerchant || role == RoleAdmin
}
