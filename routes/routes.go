package routes

import (
	"net/http"
	"time"

	"mentorhub/handlers"
	"mentorhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the per-domain handlers for route registration.
type HandlerBundle struct {
	Mentor       *handlers.MentorHandler
	Mentee       *handlers.MenteeHandler
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Admin        *handlers.AdminHandler
}

// RegisterMentorRoutes registers mentor account, timeslot and event-type
// endpoints.
func RegisterMentorRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/mentors")
	{
		api.POST("/register", hb.Mentor.RegisterHandler)
		api.POST("/login", hb.Mentor.LoginHandler)

		// Public discovery endpoints.
		api.GET("", hb.Mentor.GetMentorsHandler)
		api.GET("/id/:id", hb.Mentor.GetMentorHandler)
		api.GET("/id/:id/availability", hb.Availability.GetAvailabilityHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.MentorAuthMiddleware())
		protected.POST("/logout", hb.Mentor.LogoutHandler)
		protected.PATCH("/me", hb.Mentor.UpdateMentorHandler)
		protected.DELETE("/me", hb.Mentor.DeleteMentorHandler)

		protected.PUT("/timeslots", hb.Mentor.SetupTimeslotsHandler)
		protected.POST("/timeslots/starter", hb.Mentor.StarterScheduleHandler)
		protected.GET("/timeslots", hb.Mentor.GetTimeslotsHandler)
		protected.DELETE("/timeslots/:slotId", hb.Mentor.DeleteTimeslotHandler)

		protected.POST("/event-types", hb.Mentor.CreateEventTypeHandler)
		protected.PATCH("/event-types/:id", hb.Mentor.UpdateEventTypeHandler)
		protected.DELETE("/event-types/:id", hb.Mentor.DeleteEventTypeHandler)
		protected.GET("/event-types", hb.Mentor.GetEventTypesHandler)
		protected.POST("/event-types/import", hb.Mentor.ImportEventTypesHandler)

		protected.DELETE("/bookings/:id", hb.Booking.CancelBookingAsMentorHandler)
	}
}

// RegisterMenteeRoutes registers mentee account and matching endpoints.
func RegisterMenteeRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/mentees")
	{
		api.POST("/register", hb.Mentee.RegisterHandler)
		api.POST("/login", hb.Mentee.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.MenteeAuthMiddleware())
		api.POST("/logout", hb.Mentee.LogoutHandler)
		api.GET("/me", hb.Mentee.GetProfileHandler)
		api.PATCH("/me", hb.Mentee.UpdateProfileHandler)
		api.DELETE("/me", hb.Mentee.DeleteAccountHandler)
		api.GET("/matches", hb.Mentee.MatchMentorsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.MenteeAuthMiddleware())
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.POST("/:id/confirm", hb.Booking.ConfirmBookingHandler)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBookingHandler)
		bookingGroup.GET("", hb.Booking.GetMyBookingsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/bookings/stats", hb.Admin.BookingStatsHandler)
		adminGroup.GET("/bookings/upcoming", hb.Admin.UpcomingBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MentorHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMentorRoutes(r, hb)
	RegisterMenteeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
