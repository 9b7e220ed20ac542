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

type PromoHandler struct {
	Config       *config.Config
	PromoService service.IPromoService
}

func (h *PromoHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	promo := r.Group("/v1/promo-codes")
	promo.GET("/validate", context.Wrap(h.Validate)) // 结算页实时校验（公开）
	promo.POST("/create", authorize, context.Wrap(h.Create))
}

// Validate 只读校验；金额以元传入，与存储单位的换算在服务内完成
func (h *PromoHandler) Validate(c *gin.Context) error {
	var req types.ValidatePromoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.PromoService.Validate(c.Request.Context(), req.Code, service.Cents(req.PurchaseAmount))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *PromoHandler) Create(c *gin.Context) error {
	var req types.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.PromoService.CreatePromo(c.Request.Context(), context.GetRole(c), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
