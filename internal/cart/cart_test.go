package cart

import (
	"testing"

	"joedank_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beat(id, name string, price float64, qty int) models.CartItem {
	return models.CartItem{
		ProductID: id,
		Name:      name,
		Price:     price,
		Category:  models.CategoryBeat,
		Quantity:  qty,
	}
}

func TestAddNewItem(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 1))

	require.Len(t, items, 1)
	assert.Equal(t, "beat-001", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddMergesSameProduct(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 1))
	items = Add(items, beat("beat-001", "BLOOD MONEY", 29.99, 2))

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddSameProductDifferentSize(t *testing.T) {
	tee := models.CartItem{ProductID: "m-002", Name: "DEALER TEE", Price: 44.99, Category: models.CategoryMerch, Quantity: 1, Size: "M"}
	teeL := tee
	teeL.Size = "L"

	items := Add(nil, tee)
	items = Add(items, teeL)

	// Deux tailles = deux lignes distinctes
	require.Len(t, items, 2)
}

func TestAddDoesNotMutateInput(t *testing.T) {
	original := []models.CartItem{beat("beat-001", "BLOOD MONEY", 29.99, 1)}
	_ = Add(original, beat("beat-001", "BLOOD MONEY", 29.99, 5))

	assert.Equal(t, 1, original[0].Quantity)
}

func TestUpdateQuantityRecalculatesLineTotal(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 1))
	items = UpdateQuantity(items, "beat-001", 3)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 29.99*3, Total(items), 0.001)
}

func TestUpdateQuantityToZeroRemovesItem(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 2))
	items = UpdateQuantity(items, "beat-001", 0)

	assert.Empty(t, items)
	for _, it := range items {
		assert.NotEqual(t, "beat-001", it.ProductID)
	}
}

func TestRemove(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 1))
	items = Add(items, beat("beat-002", "GOLDEN HOUR", 34.99, 1))
	items = Remove(items, "beat-001")

	require.Len(t, items, 1)
	assert.Equal(t, "beat-002", items[0].ProductID)
}

func TestTotalScenario(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 1))
	items = Add(items, models.CartItem{
		ProductID: "m-002",
		Name:      "DEALER TEE",
		Price:     44.99,
		Category:  models.CategoryMerch,
		Quantity:  2,
		Size:      "M",
	})

	assert.InDelta(t, 119.97, Total(items), 0.001)
	assert.Equal(t, 3, Count(items))
}

func TestContainsCategory(t *testing.T) {
	items := Add(nil, beat("beat-001", "BLOOD MONEY", 29.99, 1))

	assert.True(t, ContainsCategory(items, models.CategoryBeat))
	assert.False(t, ContainsCategory(items, models.CategoryMerch))
}
