package locationControllers

import (
	"net/http"
	"strconv"

	"github.com/Dulanji-Amanda/SweetZone/gateway"
	"github.com/gin-gonic/gin"
)

// GET /user/location/search?q=
func SearchLocation(geo gateway.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}

		places, err := geo.Search(c.Request.Context(), query)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to search location"})
			return
		}

		c.JSON(http.StatusOK, places)
	}
}

// GET /user/location/reverse?lat=&lon=
func ReverseLocation(geo gateway.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be valid coordinates"})
			return
		}

		result, err := geo.Reverse(c.Request.Context(), lat, lon)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to resolve address"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
