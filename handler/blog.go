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

type BlogHandler struct {
	Config      *config.Config
	BlogService service.IBlogService
}

func (h *BlogHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	optional := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))
	blog := r.Group("/v1/blog")
	blog.GET("/list", optional, context.Wrap(h.List))
	blog.GET("/post/:slug", optional, context.Wrap(h.GetBySlug))
	blog.POST("/create", authorize, context.Wrap(h.Create))
}

func (h *BlogHandler) List(c *gin.Context) error {
	var req types.ListBlogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.BlogService.List(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *BlogHandler) GetBySlug(c *gin.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.NewError(http.StatusBadRequest, "slug 参数错误")
	}

	post, err := h.BlogService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (h *BlogHandler) Create(c *gin.Context) error {
	var req types.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	resp, err := h.BlogService.Create(c.Request.Context(), context.GetRole(c), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
