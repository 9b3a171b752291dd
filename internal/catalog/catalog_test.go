package catalog

import (
	"testing"

	"joedank_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProductBeat(t *testing.T) {
	p, ok := FindProduct("beat-001")

	require.True(t, ok)
	assert.Equal(t, "BLOOD MONEY", p.Name)
	assert.Equal(t, models.CategoryBeat, p.Category)
	assert.InDelta(t, 29.99, p.Price, 0.001)
}

func TestFindProductMerchSizes(t *testing.T) {
	p, ok := FindProduct("m-002")

	require.True(t, ok)
	assert.Equal(t, "DEALER TEE", p.Name)
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XXXL"))
}

func TestFindProductUnknown(t *testing.T) {
	_, ok := FindProduct("beat-999")
	assert.False(t, ok)
}
