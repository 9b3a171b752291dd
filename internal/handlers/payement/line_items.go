package payement

import (
	"math"

	"joedank_back_end/internal/models"

	"github.com/stripe/stripe-go/v83"
)

// Types "wire" des line items, au format attendu par Stripe Checkout.
// C'est aussi le format que le front envoie sur POST /api/checkout.

type LineItem struct {
	Price     string     `json:"price,omitempty"` // Price pré-créé côté Stripe
	PriceData *PriceData `json:"price_data,omitempty"`
	Quantity  int64      `json:"quantity"`
}

type PriceData struct {
	Currency    string      `json:"currency"`
	UnitAmount  int64       `json:"unit_amount"` // en cents
	ProductData ProductData `json:"product_data"`
}

type ProductData struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// LineItemFromCartItem convertit un article du panier en line item Stripe.
// Le montant passe en cents : round(prix × 100), arrondi loin de zéro.
// Aucune validation ici : le panier garantit déjà quantité ≥ 1 et prix ≥ 0.
func LineItemFromCartItem(item models.CartItem) LineItem {
	if item.StripePriceID != "" {
		return LineItem{
			Price:    item.StripePriceID,
			Quantity: int64(item.Quantity),
		}
	}

	description := ""
	if item.Size != "" {
		description = "Size: " + item.Size
	}

	return LineItem{
		PriceData: &PriceData{
			Currency:   "usd",
			UnitAmount: int64(math.Round(item.Price * 100)), // dollars → cents
			ProductData: ProductData{
				Name:        item.Name,
				Description: description,
				Metadata: map[string]string{
					"internal_id": item.ProductID,
					"category":    item.Category,
				},
			},
		},
		Quantity: int64(item.Quantity),
	}
}

// toStripeLineItems traduit nos line items wire vers les params du SDK
func toStripeLineItems(items []LineItem) []*stripe.CheckoutSessionLineItemParams {
	params := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, li := range items {
		p := &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(li.Quantity),
		}
		if li.Price != "" {
			p.Price = stripe.String(li.Price)
		}
		if li.PriceData != nil {
			priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(li.PriceData.Currency),
				UnitAmount: stripe.Int64(li.PriceData.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(li.PriceData.ProductData.Name),
					Metadata: li.PriceData.ProductData.Metadata,
				},
			}
			if li.PriceData.ProductData.Description != "" {
				priceData.ProductData.Description = stripe.String(li.PriceData.ProductData.Description)
			}
			p.PriceData = priceData
		}
		params = append(params, p)
	}
	return params
}
