package service

import (
	"GrainMall/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(ProductCacheInvalidator), new(*cache.ProductCache)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(PromoService), "*"),
	wire.Bind(new(IPromoService), new(*PromoService)),

	wire.Struct(new(BlogService), "*"),
	wire.Bind(new(IBlogService), new(*BlogService)),

	wire.Struct(new(ContactService), "*"),
	wire.Bind(new(IContactService), new(*ContactService)),

	wire.Struct(new(WishlistService), "*"),
	wire.Bind(new(IWishlistService), new(*WishlistService)),

	wire.Struct(new(MerchantService), "*"),
	wire.Bind(new(IMerchantService), new(*MerchantService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),
)
