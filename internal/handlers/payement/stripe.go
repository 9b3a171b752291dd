package payement

import (
	"joedank_back_end/internal/database"
	"joedank_back_end/internal/downloads"
	"joedank_back_end/internal/utils"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// SessionAPI couvre les deux appels Stripe du pipeline : création de session
// au checkout, lecture des line items au webhook. Interface pour les tests.
type SessionAPI interface {
	CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	ListLineItems(sessionID string) ([]*stripe.LineItem, error)
}

type stripeSessionAPI struct{}

func (stripeSessionAPI) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (stripeSessionAPI) ListLineItems(sessionID string) ([]*stripe.LineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	// On expand le produit pour récupérer l'internal_id des metadata
	params.AddExpand("data.price.product")

	iter := session.ListLineItems(params)
	var items []*stripe.LineItem
	for iter.Next() {
		items = append(items, iter.LineItem())
	}
	return items, iter.Err()
}

// Handler regroupe les dépendances des endpoints de paiement
type Handler struct {
	Sessions SessionAPI
	Mail     utils.Mailer
	Events   database.EventStore
	Carts    database.CartStore
	Registry *downloads.Registry
}

// NewHandler câble le handler de production (Stripe + SMTP + Redis)
func NewHandler(carts database.CartStore, events database.EventStore, registry *downloads.Registry) *Handler {
	return &Handler{
		Sessions: stripeSessionAPI{},
		Mail:     utils.SMTPMailer{},
		Events:   events,
		Carts:    carts,
		Registry: registry,
	}
}
