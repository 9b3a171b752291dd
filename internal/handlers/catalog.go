package handlers

import (
	"net/http"

	"joedank_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// GetBeats liste les beats du catalogue
func GetBeats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"beats": catalog.Beats})
}

// GetDrumkits liste les drum kits du catalogue
func GetDrumkits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"drumkits": catalog.Drumkits})
}

// GetMerch liste le merch du catalogue
func GetMerch(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"merch": catalog.Merch})
}
