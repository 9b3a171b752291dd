package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"joedank_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	// Créer une session Stripe n'est pas idempotent : on borne les appels
	CheckoutMaxRequests = 10
	CheckoutWindow      = 1 * time.Minute
)

// CheckoutRateLimit limite les créations de session de paiement par panier
func CheckoutRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetString("cart_id")
		if cartID == "" {
			cartID = c.ClientIP()
		}

		ctx := context.Background()
		key := "checkout_attempts:" + cartID

		pipe := database.Redis.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, CheckoutWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			// Redis indisponible : on laisse passer plutôt que de bloquer la vente
			c.Next()
			return
		}

		if incr.Val() > CheckoutMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives de paiement. Réessayez dans %d secondes", int(CheckoutWindow.Seconds())),
				"retry_after": int(CheckoutWindow.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
