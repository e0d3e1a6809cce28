package productcontroller

import (
	"net/http"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CollectionInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	TastingNotes string `json:"tasting_notes"`
	Tag          string `json:"tag"`
	Size         string `json:"size"`
	Price        int64  `json:"price" binding:"required"`
	Image        string `json:"image"`
}

// GET /catalog/collections
func GetCollections(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var collections []models.Collection
		if err := db.Find(&collections).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
			return
		}

		c.JSON(http.StatusOK, collections)
	}
}

// POST /admin/collections
func CreateCollection(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CollectionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		collection := models.Collection{
			Title:        input.Title,
			Description:  input.Description,
			TastingNotes: input.TastingNotes,
			Tag:          input.Tag,
			Size:         input.Size,
			Price:        input.Price,
			Image:        input.Image,
		}

		if err := db.Create(&collection).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
			return
		}

		c.JSON(http.StatusCreated, collection)
	}
}
