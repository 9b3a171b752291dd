package payement

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"joedank_back_end/internal/downloads"
	"joedank_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
)

// StripeWebhook reçoit les notifications de paiement Stripe.
// Signature invalide = 400 et on ne touche à rien. Une fois la signature
// vérifiée, on répond toujours {received:true}, quoi qu'il arrive en aval.
func (h *Handler) StripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := c.GetRawData()
	if err != nil {
		log.Println("❌ Lecture payload échouée:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Échec lecture body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), secret)
	if err != nil {
		log.Println("❌ Signature Stripe invalide:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature invalide"})
		return
	}

	log.Printf("📥 Événement Stripe reçu : %s", event.Type)
	h.handleStripeEvent(event)

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// handleStripeEvent ne traite que checkout.session.completed,
// tout le reste est acquitté et ignoré
func (h *Handler) handleStripeEvent(event stripe.Event) {
	if event.Type != "checkout.session.completed" {
		log.Printf("ℹ️ Événement ignoré : %s", event.Type)
		return
	}

	ctx := context.Background()

	// Stripe peut redélivrer le même événement : le marqueur est posé
	// AVANT tout effet de bord, une redélivrance ne refait rien
	fresh, err := h.Events.MarkProcessed(ctx, event.ID)
	if err != nil {
		log.Println("⚠️ Erreur vérification idempotence:", err)
	} else if !fresh {
		log.Printf("🔁 Événement %s déjà traité, on ignore.", event.ID)
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		log.Println("❌ Erreur décodage CheckoutSession:", err)
		return
	}
	log.Printf("🧠 Session complétée : %s", sess.ID)

	customerEmail := ""
	if sess.CustomerDetails != nil {
		customerEmail = sess.CustomerDetails.Email
	}
	if customerEmail == "" {
		// Paiement sans e-mail : rien à livrer par ce canal
		log.Println("⚠️ Pas d'e-mail client sur la session, fulfilment impossible")
		return
	}

	lineItems, err := h.Sessions.ListLineItems(sess.ID)
	if err != nil {
		log.Println("❌ Erreur récupération line items:", err)
		return
	}
	log.Printf("🛒 Articles dans la commande : %d", len(lineItems))

	links := h.resolveDownloadLinks(ctx, lineItems)
	if len(links) == 0 {
		// Commande 100% merch : la livraison physique suit son cours côté Stripe
		log.Println("ℹ️ Aucun produit digital dans la commande, pas d'e-mail")
		h.clearCart(ctx, sess.Metadata)
		return
	}

	html := utils.GenerateDownloadEmailHTML(links)
	if err := h.Mail.Send(customerEmail, utils.DownloadEmailSubject, html); err != nil {
		log.Println("❌ Erreur envoi e-mail fulfilment :", err)
	} else {
		log.Printf("📧 E-mail de téléchargement envoyé à %s (%d lien(s))", customerEmail, len(links))
	}

	h.clearCart(ctx, sess.Metadata)
}

// resolveDownloadLinks croise les line items de la commande avec le registre :
// d'abord par internal_id (stable), sinon par nom affiché en MAJUSCULES
func (h *Handler) resolveDownloadLinks(ctx context.Context, lineItems []*stripe.LineItem) []utils.DownloadLink {
	var links []utils.DownloadLink

	for _, li := range lineItems {
		entry, ok := h.lookupEntry(li)
		if !ok {
			continue // pas de lien = rien à livrer, ce n'est pas une erreur
		}

		url, err := h.Registry.DeliveryURL(ctx, entry)
		if err != nil {
			log.Printf("❌ Erreur génération lien pour %s : %v", entry.Name, err)
			continue
		}

		name := li.Description
		if name == "" {
			name = entry.Name
		}
		links = append(links, utils.DownloadLink{Name: name, URL: url})
	}
	return links
}

func (h *Handler) lookupEntry(li *stripe.LineItem) (downloads.Entry, bool) {
	if li.Price != nil && li.Price.Product != nil {
		if id := li.Price.Product.Metadata["internal_id"]; id != "" {
			if entry, ok := h.Registry.LookupByID(id); ok {
				return entry, true
			}
		}
	}
	return h.Registry.LookupByName(li.Description)
}

// clearCart supprime le panier Redis APRÈS le fulfilment, comme le front ne
// peut pas le faire lui-même après la redirection Stripe
func (h *Handler) clearCart(ctx context.Context, metadata map[string]string) {
	cartID := metadata["cart_id"]
	if cartID == "" || h.Carts == nil {
		return
	}
	if err := h.Carts.DeleteCart(ctx, cartID); err == nil {
		log.Printf("🧹 Panier %s supprimé de Redis", cartID)
	}
}
