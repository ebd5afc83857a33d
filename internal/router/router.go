package router

import (
	"fmt"
	"strings"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	publichandlers "github.com/storefront-next/internal/http/handlers/public"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:write", redisPrefix),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
		Message:       "too many write requests",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		storefront := apiV1.Group("/storefront")
		{
			storefront.POST("/session", publicHandler.CreateSession)
			storefront.GET("/categories", publicHandler.GetCategories)
			storefront.GET("/categories/:id", publicHandler.GetCategory)
			storefront.GET("/categories/:id/products", publicHandler.GetProductsByCategory)
			storefront.GET("/categories/:id/products/count", publicHandler.GetProductCountByCategory)
			storefront.GET("/products/:id", publicHandler.GetProduct)
			storefront.GET("/search", publicHandler.SearchProducts)
		}

		session := apiV1.Group("/storefront", SessionAuthMiddleware(c.SessionService))
		{
			session.GET("/cart", publicHandler.GetCart)
			session.GET("/wishlist", publicHandler.GetWishlist)

			write := session.Group("", RateLimitMiddleware(cache.Client(), writeRule, nil))
			{
				write.POST("/carts", publicHandler.UpsertCart)
				write.DELETE("/carts/:id", publicHandler.DeleteCart)
				write.POST("/cart-items", publicHandler.UpsertCartItems)
				write.DELETE("/cart-items/:id", publicHandler.DeleteCartItem)
				write.POST("/wishlist", publicHandler.AddWishlistItem)
				write.DELETE("/wishlist/:product_id", publicHandler.RemoveWishlistItem)
			}
		}
	}

	return r
}
