package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewProduct,
	NewReview,
	NewCart,
	NewOrder,
	NewPromo,
	NewBlog,
	NewContact,
	NewWishlist,
	NewMerchant,
	NewNotification,
)
