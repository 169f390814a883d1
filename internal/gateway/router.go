// Package gateway implements the browser-facing front end for the
// marketplace. It owns no business logic: handlers translate browser
// requests into backend client calls and a Redis-backed session keeps the
// bearer token server-side, out of the browser.
package gateway

import (
	"agrirent/internal/config"
	"agrirent/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the gateway router
func SetupRouter(cfg *config.Config, sessions session.Manager) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	h := NewHandler(cfg, sessions)

	r.GET("/health", h.Health)
	r.GET("/login", h.LoginView)

	// Public routes - no session required
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
	r.GET("/explore", h.Explore)

	// Protected routes - require a live gateway session
	api := r.Group("/api")
	api.Use(RequireSession(sessions))
	{
		api.GET("/profile", h.Profile)
		api.GET("/dashboard", h.DashboardView)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.ListBookings)
			bookings.POST("", h.CreateBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.DELETE("/:id", h.DeleteBooking)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", h.ListEquipment)
			equipment.POST("", h.CreateEquipment)
			equipment.PUT("/:id", h.UpdateEquipment)
			equipment.DELETE("/:id", h.DeleteEquipment)
		}
	}

	return r
}
