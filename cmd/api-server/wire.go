//go:build wireinject
// +build wireinject

package main

import (
	"GrainMall/config"
	"GrainMall/dao"
	"GrainMall/dao/cache"
	"GrainMall/handler"
	"GrainMall/pkg/client"
	"GrainMall/pkg/database"
	"GrainMall/pkg/server"
	"GrainMall/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.ProductHandler), "*"),
		wire.Struct(new(handler.ReviewHandler), "*"),
		wire.Struct(new(handler.CartHandler), "*"),
		wire.Struct(new(handler.OrderHandler), "*"),
		wire.Struct(new(handler.PromoHandler), "*"),
		wire.Struct(new(handler.BlogHandler), "*"),
		wire.Struct(new(handler.ContactHandler), "*"),
		wire.Struct(new(handler.WishlistHandler), "*"),
		wire.Struct(new(handler.MerchantHandler), "*"),
		wire.Struct(new(handler.NotificationHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
