package handlers

import (
	"context"
	"net/http"

	"joedank_back_end/internal/cart"
	"joedank_back_end/internal/catalog"
	"joedank_back_end/internal/database"
	"joedank_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Store database.CartStore
}

func NewCartHandler(store database.CartStore) *CartHandler {
	return &CartHandler{Store: store}
}

//
// 🛒 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := c.GetString("cart_id")

	items, err := h.Store.GetCart(context.Background(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": cart.Total(items),
		"count": cart.Count(items),
	})
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	cartID := c.GetString("cart_id")

	var input struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	// 🧩 Le prix et le nom viennent du catalogue, jamais du client
	product, ok := catalog.FindProduct(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if product.Category == models.CategoryMerch {
		if input.Size == "" || !product.HasSize(input.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Taille invalide pour ce produit"})
			return
		}
	} else {
		input.Size = ""
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Quantity:  input.Quantity,
		Size:      input.Size,
	}

	items, err := h.Store.GetCart(context.Background(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.Add(items, item)

	if err := h.Store.SaveCart(context.Background(), cartID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   items,
		"total":   cart.Total(items),
	})
}

//
// 🔁 PATCH /api/cart/:productId
//
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	cartID := c.GetString("cart_id")
	productID := c.Param("productId")

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items, err := h.Store.GetCart(context.Background(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	// Quantité ≤ 0 : la ligne disparaît, pas de ligne à zéro
	items = cart.UpdateQuantity(items, productID, input.Quantity)

	if err := h.Store.SaveCart(context.Background(), cartID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": cart.Total(items),
	})
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cartID := c.GetString("cart_id")
	productID := c.Param("productId")

	items, err := h.Store.GetCart(context.Background(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.Remove(items, productID)

	if err := h.Store.SaveCart(context.Background(), cartID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
	})
}

//
// 🧹 DELETE /api/cart
//
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID := c.GetString("cart_id")

	if err := h.Store.DeleteCart(context.Background(), cartID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
	})
}
