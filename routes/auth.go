package routes

import (
	"github.com/Dulanji-Amanda/SweetZone/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(deps.Auth, deps.Cfg.JWTSecret))
		authGroup.POST("/register", auth.RegisterHandler(deps.Auth, deps.Cfg.JWTSecret))
		authGroup.POST("/logout", auth.LogoutHandler())
	}
}
