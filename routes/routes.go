package routes

import (
	"net/http"
	"time"

	"shutterbook/handlers"
	"shutterbook/middleware"
	"shutterbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers slot grid and date availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/slots", hb.Availability.ListSlotsHandler)
		api.GET("/check", hb.Availability.CheckDateHandler)
		api.GET("/dates", hb.Availability.ListDatesHandler)
	}
}

// RegisterCatalogRoutes registers addon catalog and coupon validation endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	addons := r.Group("/api/addons")
	{
		addons.GET("", hb.Catalog.ListAddonsHandler)
		addons.GET("/:id", hb.Catalog.GetAddonHandler)
	}
	coupons := r.Group("/api/coupons")
	{
		coupons.POST("/validate", hb.Catalog.ValidateCouponHandler)
	}
	pricing := r.Group("/api/pricing")
	{
		pricing.POST("/quote", hb.Pricing.QuoteHandler)
	}
}

// RegisterPhotographerRoutes registers the directory endpoints.
func RegisterPhotographerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/photographers")
	{
		api.GET("", hb.Photographers.ListHandler)
		api.GET("/:id", hb.Photographers.GetByIDHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking draft engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		bookingGroup.PUT("/session/:sessionID/slots", hb.Booking.ToggleSlot)
		bookingGroup.PUT("/session/:sessionID/addons", hb.Booking.SetAddonQuantity)
		bookingGroup.PUT("/session/:sessionID/coupon", hb.Booking.ApplyCoupon)
		bookingGroup.DELETE("/session/:sessionID/coupon", hb.Booking.RemoveCoupon)
		bookingGroup.PUT("/session/:sessionID/details", hb.Booking.SetDetails)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		bookingGroup.GET("/history", hb.Booking.ListMyBookings)
		bookingGroup.GET("/history/:bookingID", hb.Booking.GetBooking)
	}
}

// RegisterStorageRoutes registers portfolio upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/portfolio", hb.Storage.UploadPortfolioHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/bookings", hb.Admin.ListBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterPhotographerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
