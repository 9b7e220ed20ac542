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

type ContactHandler struct {
	Config         *config.Config
	ContactService service.IContactService
}

func (h *ContactHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	contact := r.Group("/v1/contact")
	contact.POST("/submit", context.Wrap(h.Submit)) // 公开留言
	contact.GET("/list", authorize, context.Wrap(h.List))
}

func (h *ContactHandler) Submit(c *gin.Context) error {
	var req types.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.ContactService.Submit(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *ContactHandler) List(c *gin.Context) error {
	var req types.ListContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.ContactService.List(c.Request.Context(), context.GetRole(c), req.Limit, req.Offset)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
