package payement

import (
	"context"
	"log"
	"net/http"
	"os"

	"joedank_back_end/internal/cart"
	"joedank_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

// Pays livrables pour le merch
var merchShippingCountries = []string{"US", "CA", "GB", "AU", "DE", "FR"}

type shippingAddressCollection struct {
	AllowedCountries []string `json:"allowed_countries"`
}

type checkoutRequest struct {
	LineItems                 []LineItem                 `json:"line_items"`
	Mode                      string                     `json:"mode"`
	SuccessURL                string                     `json:"success_url" binding:"required"`
	CancelURL                 string                     `json:"cancel_url" binding:"required"`
	ShippingAddressCollection *shippingAddressCollection `json:"shipping_address_collection"`
	Metadata                  map[string]string          `json:"metadata"`
}

// CreateCheckoutSession crée une session Stripe Checkout hébergée et retourne
// l'URL de redirection. Un appel = une session : pas d'idempotence ici,
// c'est au client de ne pas re-soumettre.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Données invalides", "details": err.Error()})
		return
	}

	if len(req.LineItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Panier vide"})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = string(stripe.CheckoutSessionModePayment)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(mode),
		LineItems:          toStripeLineItems(req.LineItems),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(false),
		},
	}
	if len(req.Metadata) > 0 {
		params.Metadata = req.Metadata
	}
	if req.ShippingAddressCollection != nil && len(req.ShippingAddressCollection.AllowedCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(req.ShippingAddressCollection.AllowedCountries),
		}
	}

	sess, err := h.Sessions.CreateSession(params)
	if err != nil {
		// Toute erreur Stripe (line items invalides, réseau, auth) remonte telle quelle
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	log.Printf("💳 Session Checkout créée : %s", sess.ID)
	c.JSON(http.StatusOK, gin.H{"url": sess.URL})
}

// CheckoutFromCart lit le panier Redis du visiteur, l'adapte en line items et
// crée la session Stripe. Les URLs de redirection viennent de FRONTEND_URL ;
// Stripe remplace le placeholder {CHECKOUT_SESSION_ID} à la volée.
func (h *Handler) CheckoutFromCart(c *gin.Context) {
	cartID := c.GetString("cart_id")
	if cartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Panier introuvable"})
		return
	}

	items, err := h.Carts.GetCart(context.Background(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erreur lecture panier"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Panier vide"})
		return
	}

	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, LineItemFromCartItem(item))
	}

	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          toStripeLineItems(lineItems),
		SuccessURL:         stripe.String(base + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(base + "/#beats"),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(false),
		},
	}

	// Le webhook retrouve le panier et la composition de la commande ici
	params.Metadata = map[string]string{
		"cart_id":           cartID,
		"contains_beats":    boolString(cart.ContainsCategory(items, models.CategoryBeat)),
		"contains_drumkits": boolString(cart.ContainsCategory(items, models.CategoryDrumkit)),
		"contains_merch":    boolString(cart.ContainsCategory(items, models.CategoryMerch)),
	}

	// Adresse de livraison uniquement si le panier contient du merch
	if cart.ContainsCategory(items, models.CategoryMerch) {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(merchShippingCountries),
		}
	}

	sess, err := h.Sessions.CreateSession(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	log.Printf("💳 Session Checkout créée : %s (%.2f$) pour le panier %s", sess.ID, cart.Total(items), cartID)

	c.JSON(http.StatusOK, gin.H{
		"url":         sess.URL,
		"amount":      cart.Total(items),
		"items_count": len(items),
	})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
