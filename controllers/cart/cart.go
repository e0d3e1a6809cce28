package cartControllers

import (
	"net/http"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ProductID   uint   `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

func userID(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// GET /user/cart
func GetUserCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       carts.Items(uid),
			"subtotal":    carts.Subtotal(uid),
			"total_items": carts.TotalItems(uid),
		})
	}
}

// POST /user/cart
//
// Catalog adds carry a product_id and take their display fields from the
// database; free-form adds supply name and price directly.
func AddCartItem(db *gorm.DB, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		payload := store.AddPayload{
			ProductID:   input.ProductID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Quantity:    input.Quantity,
		}

		if input.ProductID != 0 {
			var product models.Product
			if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
				status := http.StatusInternalServerError
				errMsg := "Failed to validate product"
				if err == gorm.ErrRecordNotFound {
					status = http.StatusBadRequest
					errMsg = "Product does not exist"
				}
				c.JSON(status, gin.H{"error": errMsg})
				return
			}
			payload.Name = product.Name
			payload.Description = product.Description
			payload.Price = product.Price
			payload.Image = product.Image
		} else {
			if input.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
				return
			}
			if input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
		}

		line := carts.Add(uid, payload)
		c.JSON(http.StatusCreated, line)
	}
}

// PUT /user/cart/:line_id
func UpdateCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantities below 1 are discarded by the store; the line comes
		// back unchanged.
		line, found := carts.UpdateQuantity(uid, c.Param("line_id"), input.Quantity)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, line)
	}
}

// DELETE /user/cart/:line_id
func DeleteCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		carts.Remove(uid, c.Param("line_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearUserCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		carts.Clear(uid)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
