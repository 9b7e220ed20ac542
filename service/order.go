package service

import (
	"GrainMall/dao"
	"GrainMall/models"
	"GrainMall/pkg/context"
	"GrainMall/pkg/log"
	"GrainMall/pkg/ordersn"
	"GrainMall/pkg/response"
	"GrainMall/pkg/snowflake"
	"GrainMall/types"
	base "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductCacheInvalidator 商品写操作落库后失效详情缓存的最小协议
type ProductCacheInvalidator interface {
	Del(ctx base.Context, productID int64) error
}

type OrderService struct {
	DB              *gorm.DB
	OrderDAO        *dao.Order
	CartDAO         *dao.Cart
	ProductDAO      *dao.Product
	PromoDAO        *dao.Promo
	NotificationDAO *dao.Notification
	ProductCache    ProductCacheInvalidator
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Create(ctx base.Context, userID string, req *types.CreateOrderRequest) (*types.CreateOrderResponse, error)
	List(ctx base.Context, userID string, limit, offset int) (*types.ListOrdersResponse, error)
	GetById(ctx base.Context, userID string, orderID int64) (*types.OrderDetailResponse, error)
	UpdateStatus(ctx base.Context, userID, role string, req *types.UpdateOrderStatusRequest) error
}

// Create 下单。订单头、明细、库存扣减、优惠码核销、清空购物车、
// 下单通知全部在同一事务内完成，任一步失败整体回滚。
func (o *OrderService) Create(ctx base.Context, userID string, req *types.CreateOrderRequest) (*types.CreateOrderResponse, error) {
	// 小计由提交的行金额重算，不直接采信客户端给出的汇总
	var subtotal int64
	items := make([]*models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		price := Cents(line.Price)
		lineSubtotal := price * int64(line.Quantity)
		subtotal += lineSubtotal
		items = append(items, &models.OrderItem{
			ID:        snowflake.GenID(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
			Subtotal:  lineSubtotal,
		})
	}

	tax := Cents(req.Tax)
	shipping := Cents(req.Shipping)

	// 优惠金额由服务端按优惠码规则重算
	var discount int64
	var promo *models.PromoCode
	if req.PromoCode != "" {
		pc, err := o.PromoDAO.FindActiveByCode(ctx, req.PromoCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewError(400, "Invalid promo code")
			}
			return nil, err
		}
		if msg := CheckUsable(pc, subtotal, time.Now()); msg != "" {
			return nil, response.NewError(400, msg)
		}
		discount = Discount(pc, subtotal)
		promo = pc
	}

	shippingAddr, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return nil, response.NewError(400, "收货地址格式错误")
	}
	billingAddr := shippingAddr // 未提供账单地址时沿用收货地址
	if len(req.BillingAddress) > 0 {
		if billingAddr, err = json.Marshal(req.BillingAddress); err != nil {
			return nil, response.NewError(400, "账单地址格式错误")
		}
	}

	orderID := snowflake.GenID()
	orderNumber := ordersn.Gen(orderID)

	order := &models.Order{
		ID:              orderID,
		UserID:          userID,
		OrderNumber:     orderNumber,
		Status:          models.OrderStatusPending,
		Subtotal:        subtotal,
		Tax:             tax,
		Shipping:        shipping,
		Discount:        discount,
		Total:           subtotal + tax + shipping - discount,
		PromoCode:       req.PromoCode,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   "pending",
		ShippingAddress: datatypes.JSON(shippingAddr),
		BillingAddress:  datatypes.JSON(billingAddr),
		Notes:           req.Notes,
	}
	for _, item := range items {
		item.OrderID = orderID
	}

	err = o.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 商品快照校验 + 条件扣库存
		for i, item := range items {
			product, findErr := o.ProductDAO.FindById(ctx, item.ProductID)
			if findErr != nil {
				return response.NotFound(fmt.Sprintf("商品 %d 不存在", item.ProductID))
			}
			items[i].ProductName = product.Name

			rows, decErr := o.ProductDAO.DecrementStock(ctx, tx, item.ProductID, item.Quantity)
			if decErr != nil {
				return decErr
			}
			if rows == 0 {
				return response.NewError(400, fmt.Sprintf("商品 %s 库存不足", product.Name))
			}
		}

		// 2. 订单头 + 明细
		if txErr := o.OrderDAO.CreateWithItems(ctx, tx, order, items); txErr != nil {
			return txErr
		}

		// 3. 优惠码核销，带上限自增防止限量码超发
		if promo != nil {
			rows, incErr := o.PromoDAO.IncrementUsage(ctx, tx, promo.ID)
			if incErr != nil {
				return incErr
			}
			if rows == 0 {
				return response.NewError(400, "Promo code usage limit reached")
			}
		}

		// 4. 清空购物车
		if clearErr := o.CartDAO.Clear(ctx, tx, userID); clearErr != nil {
			return clearErr
		}

		// 5. 下单通知
		return o.NotificationDAO.CreateTx(ctx, tx, &models.Notification{
			ID:      snowflake.GenID(),
			UserID:  userID,
			Type:    models.NotifyTypeOrderStatus,
			Title:   "订单已创建",
			Content: fmt.Sprintf("订单 %s 已创建，等待确认", orderNumber),
		})
	})
	if err != nil {
		return nil, err
	}

	// 库存已变化，事务提交后失效商品缓存
	for _, item := range items {
		if delErr := o.ProductCache.Del(ctx, item.ProductID); delErr != nil {
			log.L.Warn("product cache del failed", zap.Int64("product_id", item.ProductID), zap.Error(delErr))
		}
	}

	log.L.Info("order created",
		zap.String("user_id", userID),
		zap.Int64("order_id", orderID),
		zap.String("order_number", orderNumber),
		zap.Int64("total", order.Total),
	)

	return &types.CreateOrderResponse{OrderID: orderID, OrderNumber: orderNumber}, nil
}

func (o *OrderService) List(ctx base.Context, userID string, limit, offset int) (*types.ListOrdersResponse, error) {
	orders, total, err := o.OrderDAO.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &types.ListOrdersResponse{Orders: orders, Total: total}, nil
}

// GetById 他人订单与不存在同样返回 NOT_FOUND，避免探测订单号
func (o *OrderService) GetById(ctx base.Context, userID string, orderID int64) (*types.OrderDetailResponse, error) {
	order, err := o.OrderDAO.FindById(ctx, orderID)
	if err != nil || order.UserID != userID {
		return nil, response.NotFound("订单不存在")
	}

	items, err := o.OrderDAO.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &types.OrderDetailResponse{Order: order, Items: items}, nil
}

// UpdateStatus 本人或管理员可改；商家不可操作他人订单，哪怕是自家商品的订单
func (o *OrderService) UpdateStatus(ctx base.Context, userID, role string, req *types.UpdateOrderStatusRequest) error {
	order, err := o.OrderDAO.FindById(ctx, req.ID)
	if err != nil {
		return response.NotFound("订单不存在")
	}

	if role != context.RoleAdmin && order.UserID != userID {
		return response.Forbidden("无权修改该订单状态")
	}

	return o.OrderDAO.UpdateStatus(ctx, req.ID, req.Status)
}
