package models

// Catégories de produits vendus sur la boutique
const (
	CategoryBeat    = "Beat"
	CategoryDrumkit = "Drumkit"
	CategoryMerch   = "Merch"
)

type Cart struct {
	CartID string     `json:"cart_id"`
	Items  []CartItem `json:"items"`
}

type CartItem struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"` // en USD (ex: 29.99)
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
	Size          string  `json:"size,omitempty"`            // uniquement pour le merch
	StripePriceID string  `json:"stripe_price_id,omitempty"` // si un Price pré-créé existe côté Stripe
}
