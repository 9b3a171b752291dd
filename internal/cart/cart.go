package cart

import "joedank_back_end/internal/models"

// Opérations pures sur le panier : chaque fonction retourne un nouveau slice,
// l'état existant n'est jamais modifié. Le stockage (Redis) est géré ailleurs.

// itemKey identifie une ligne du panier : même produit + même taille = même ligne
func itemKey(item models.CartItem) string {
	return item.ProductID + "|" + item.Size
}

// Add ajoute un article au panier, ou augmente la quantité si la ligne existe déjà
func Add(items []models.CartItem, item models.CartItem) []models.CartItem {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	next := make([]models.CartItem, len(items))
	copy(next, items)

	for i := range next {
		if itemKey(next[i]) == itemKey(item) {
			next[i].Quantity += item.Quantity
			return next
		}
	}
	return append(next, item)
}

// Remove supprime complètement une ligne du panier
func Remove(items []models.CartItem, productID string) []models.CartItem {
	next := []models.CartItem{}
	for _, it := range items {
		if it.ProductID != productID {
			next = append(next, it)
		}
	}
	return next
}

// UpdateQuantity fixe la quantité d'une ligne.
// Une quantité ≤ 0 supprime la ligne : jamais de ligne à quantité zéro.
func UpdateQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return Remove(items, productID)
	}

	next := make([]models.CartItem, len(items))
	copy(next, items)

	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
		}
	}
	return next
}

// Total calcule le montant total du panier en USD
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count retourne le nombre total d'articles (quantités cumulées)
func Count(items []models.CartItem) int {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}

// ContainsCategory indique si le panier contient au moins un article de la catégorie
func ContainsCategory(items []models.CartItem, category string) bool {
	for _, it := range items {
		if it.Category == category {
			return true
		}
	}
	return false
}
