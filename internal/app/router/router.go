// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"
)

// NewRouter builds the route table. Registration and login are public;
// everything in the protected group requires a valid bearer token.
func NewRouter(authHandler *authhandler.AuthHandler, verifier jwtmw.Verifier, frontendURL string) *gin.Engine {
	r := gin.Default()

	// The SPA runs on a different origin during development.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{frontendURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Liveness probe
	r.GET("/healthz", handler.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Routes requiring authentication
	protected := r.Group("/auth")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.GET("/me", authHandler.Me)
	}

	return r
}
