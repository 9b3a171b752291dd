package routes

import (
	"joedank_back_end/internal/handlers"
	"joedank_back_end/internal/handlers/payement"
	"joedank_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, carts *handlers.CartHandler, payments *payement.Handler) {
	api := r.Group("/api")

	// Catalogue
	api.GET("/catalog/beats", handlers.GetBeats)
	api.GET("/catalog/drumkits", handlers.GetDrumkits)
	api.GET("/catalog/merch", handlers.GetMerch)

	// Panier (identifié par cookie anonyme)
	cartGroup := api.Group("/cart", middleware.CartSession())
	cartGroup.GET("", carts.GetCart)
	cartGroup.POST("/add", carts.AddToCart)
	cartGroup.PATCH("/:productId", carts.UpdateQuantity)
	cartGroup.DELETE("/:productId", carts.RemoveFromCart)
	cartGroup.DELETE("", carts.ClearCart)

	// Paiement
	api.POST("/checkout", payments.CreateCheckoutSession)
	api.POST("/checkout/cart", middleware.CartSession(), middleware.CheckoutRateLimit(), payments.CheckoutFromCart)

	// Webhook Stripe (signé, pas de session panier ici)
	api.POST("/webhooks/stripe", payments.StripeWebhook)
}
