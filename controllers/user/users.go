package userControllers

import (
	"net/http"

	"github.com/Dulanji-Amanda/SweetZone/gateway"
	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateEmailInput struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdatePasswordInput struct {
	Password string `json:"password" binding:"required,min=6"`
}

// authToken pulls the identity-provider token profile edits must carry.
func authToken(c *gin.Context) (string, bool) {
	token := c.GetHeader("X-Auth-Token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Auth-Token header is missing"})
		return "", false
	}
	return token, true
}

// GET /user
//
// Identity lives at the auth gateway; the profile shown here is whatever
// the session token carries.
func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		name, _ := c.Get("name")
		email, _ := c.Get("email")

		c.JSON(http.StatusOK, gin.H{
			"id":    userID,
			"name":  name,
			"email": email,
		})
	}
}

// PUT /user/profile
func UpdateProfile(gw gateway.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := authToken(c)
		if !ok {
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := gw.UpdateProfile(c.Request.Context(), token, input.Name); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update profile, please try again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
	}
}

// PUT /user/email
func UpdateEmail(gw gateway.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := authToken(c)
		if !ok {
			return
		}

		var input UpdateEmailInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := gw.UpdateEmail(c.Request.Context(), token, input.Email); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update email, please sign in again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Email updated"})
	}
}

// PUT /user/password
func UpdatePassword(gw gateway.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := authToken(c)
		if !ok {
			return
		}

		var input UpdatePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := gw.UpdatePassword(c.Request.Context(), token, input.Password); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update password, please sign in again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
