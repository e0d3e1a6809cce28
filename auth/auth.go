package auth

import (
	"net/http"
	"time"

	"github.com/Dulanji-Amanda/SweetZone/gateway"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// issueJWT stamps a session token for a signed-in account.
func issueJWT(secret string, acct *gateway.Account) (string, error) {
	claims := jwt.MapClaims{
		"user_id": acct.UID,
		"name":    acct.DisplayName,
		"email":   acct.Email,
		"role":    "user",
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// POST /auth/login
func LoginHandler(gw gateway.Auth, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		acct, err := gw.SignIn(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := issueJWT(secret, acct)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Login successful",
			"token":      token,
			"auth_token": acct.IDToken,
			"user": gin.H{
				"id":    acct.UID,
				"name":  acct.DisplayName,
				"email": acct.Email,
			},
		})
	}
}

// POST /auth/register
func RegisterHandler(gw gateway.Auth, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		acct, err := gw.SignUp(c.Request.Context(), input.Name, input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Registration failed: " + err.Error()})
			return
		}

		token, err := issueJWT(secret, acct)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Registration successful",
			"token":      token,
			"auth_token": acct.IDToken,
			"user": gin.H{
				"id":    acct.UID,
				"name":  acct.DisplayName,
				"email": acct.Email,
			},
		})
	}
}

// POST /auth/logout
//
// Sessions are stateless JWTs; the server keeps nothing to revoke. The
// endpoint exists so clients have one place to end a session.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
