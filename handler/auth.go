package handler

import (
	"GrainMall/config"
	"GrainMall/middleware"
	"GrainMall/models"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/service"
	"GrainMall/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Auth 会话由外部登录服务签发，这里提供身份回显、资料同步和登出
type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	auth := r.Group("/v1/auth")
	auth.GET("/me", authorize, context.Wrap(a.Me))
	auth.POST("/sync", authorize, context.Wrap(a.SyncProfile))
	auth.POST("/logout", context.Wrap(a.Logout))
}

func (a *Auth) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	role := context.GetRole(c)

	user, err := a.UserService.Me(c.Request.Context(), userID, role)
	if err != nil {
		return err
	}

	response.Success(c, &types.MeResponse{
		UserID: userID,
		Role:   role,
		User:   user,
	})
	return nil
}

// SyncProfile 登录回调后由前端携带外部资料调用一次
func (a *Auth) SyncProfile(c *gin.Context) error {
	var req types.SyncProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	user := &models.Users{
		ID:          userID,
		Name:        req.Name,
		LoginMethod: req.LoginMethod,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Role:        context.GetRole(c),
	}
	// 未带邮箱时落 NULL，空串会在唯一索引上互撞
	if req.Email != "" {
		user.Email = &req.Email
	}

	err = a.UserService.SyncProfile(c.Request.Context(), user)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

// Logout 令牌为无状态 JWT，服务端无会话可清，返回成功由客户端丢弃令牌
func (a *Auth) Logout(c *gin.Context) error {
	response.Success(c, gin.H{"success": true})
	return nil
}
