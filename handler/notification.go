package handler

import (
	"GrainMall/config"
	"GrainMall/middleware"
	"GrainMall/pkg/context"
	"GrainMall/pkg/response"
	"GrainMall/service"
	"GrainMall/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (h *NotificationHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	notifications := r.Group("/v1/notifications")
	notifications.Use(authorize)
	notifications.GET("/list", context.Wrap(h.List))
	notifications.POST("/read", context.Wrap(h.MarkAsRead))
}

func (h *NotificationHandler) List(c *gin.Context) error {
	var req types.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.NotificationService.List(c.Request.Context(), userID, req.Limit, req.Offset)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) error {
	var req types.MarkNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.NotificationService.MarkAsRead(c.Request.Context(), userID, req.ID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
