package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/internal/interfaces/http/handlers"
	"care-connect.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	matchHandler   *handlers.MatchHandler
	bookingHandler *handlers.BookingHandler
	reviewHandler  *handlers.ReviewHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Matching (protected: any authenticated seeker)
		v1.POST("/matches", d.authMiddleware, d.matchHandler.Match)

		// Bookings (protected)
		bookings := v1.Group("/bookings")
		bookings.Use(d.authMiddleware)
		{
			bookings.POST("", d.bookingHandler.CreateBooking)
			bookings.GET("", d.bookingHandler.ListBookings)
			bookings.GET("/:id", d.bookingHandler.GetBooking)
			bookings.PATCH("/:id/status", d.bookingHandler.TransitionBooking)
			bookings.POST("/:id/reviews", d.reviewHandler.CreateReview)
		}

		// Reviews (public read)
		v1.GET("/caregivers/:id/reviews", d.reviewHandler.ListCaregiverReviews)

		// Verification boundary (admin only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleAdmin))
		{
			admin.POST("/caregivers/:accountId/approve", d.adminHandler.ApproveCaregiver)
			admin.POST("/caregivers/:accountId/reject", d.adminHandler.RejectCaregiver)
			admin.POST("/reconcile", d.adminHandler.Reconcile)
		}
	}
}
