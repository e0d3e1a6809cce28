package productcontroller

import (
	"net/http"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StoryInput struct {
	Title    string `json:"title" binding:"required"`
	Detail   string `json:"detail"`
	Schedule string `json:"time"`
	Badge    string `json:"badge"`
}

// GET /catalog/feed
//
// The home/news feed: curated collections plus tasting stories.
func GetFeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var collections []models.Collection
		if err := db.Find(&collections).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
			return
		}

		var stories []models.Story
		if err := db.Find(&stories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"collections": collections,
			"stories":     stories,
		})
	}
}

// POST /admin/stories
func CreateStory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		story := models.Story{
			Title:    input.Title,
			Detail:   input.Detail,
			Schedule: input.Schedule,
			Badge:    input.Badge,
		}

		if err := db.Create(&story).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create story"})
			return
		}

		c.JSON(http.StatusCreated, story)
	}
}
