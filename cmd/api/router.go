package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/shared/middleware"
	"berserk-tattoos-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupArtistRoutes(api, c)
		setupGalleryRoutes(api, c)
		setupBookingRoutes(api, c)
		setupContactRoutes(api, c)
		setupInstagramRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

// ========================================
// ARTIST ROUTES
// ========================================
func setupArtistRoutes(api *gin.RouterGroup, c *container.Container) {
	artists := api.Group("/artists")
	{
		artists.GET("", c.ArtistHandler.ListArtists)
		artists.GET("/:id", c.ArtistHandler.GetArtist)
	}
}

// ========================================
// GALLERY ROUTES
// ========================================
func setupGalleryRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/gallery", c.GalleryHandler.ListGalleryItems)
}

// ========================================
// BOOKING ROUTES
// ========================================
func setupBookingRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/bookings", c.BookingHandler.CreateBooking)
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/contacts", c.ContactHandler.CreateContact)
}

// ========================================
// INSTAGRAM ROUTES
// ========================================
func setupInstagramRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/instagram", c.InstagramHandler.GetFeed)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.POST("/ingest-instagram", c.InstagramHandler.Ingest)
		admin.GET("/bookings", c.BookingHandler.ListBookings)
		admin.GET("/contacts", c.ContactHandler.ListContacts)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		})
	}
}
