package server

import (
	"GrainMall/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Product      *handler.ProductHandler
	Review       *handler.ReviewHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Promo        *handler.PromoHandler
	Blog         *handler.BlogHandler
	Contact      *handler.ContactHandler
	Wishlist     *handler.WishlistHandler
	Merchant     *handler.MerchantHandler
	Notification *handler.NotificationHandler
}
