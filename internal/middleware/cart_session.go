package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookieName = "cart_id"

// Durée du cookie panier : 30 jours, alignée sur le TTL Redis du panier
const cartCookieMaxAge = 30 * 24 * 3600

// CartSession attache un identifiant de panier anonyme à chaque visiteur.
// Pas de compte utilisateur sur la boutique : le cookie est la seule identité.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := c.Cookie(cartCookieName)
		if err != nil || cartID == "" {
			cartID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cartCookieName, cartID, cartCookieMaxAge, "/", "", false, true)
		}

		c.Set("cart_id", cartID)
		c.Next()
	}
}
