// Package api assembles the gin engine: middleware chain, domain services,
// and the route table.
package api

import (
	"net/http"

	"hostelops/backend/internal/analysis"
	"hostelops/backend/internal/announcement"
	"hostelops/backend/internal/api/handler"
	"hostelops/backend/internal/api/middleware"
	"hostelops/backend/internal/complaint"
	"hostelops/backend/internal/config"
	"hostelops/backend/internal/logger"
	"hostelops/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the domain services to the HTTP surface.
func SetupRouter(cfg *config.Config, log *logger.Logger, store *storage.Service) *gin.Engine {
	h := handler.New(
		complaint.NewService(store),
		announcement.NewService(store),
		analysis.NewService(store),
		store,
		log,
	)

	r := gin.New()
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	api := r.Group("/api")
	api.GET("/health", h.Health)

	authed := api.Group("", middleware.AuthRequired(cfg.JWTSecret))

	complaints := authed.Group("/complaints")
	{
		complaints.POST("", h.CreateComplaint)
		complaints.GET("/my", h.MyComplaints)
		complaints.GET("/stats", middleware.AdminOnly(), h.ComplaintStats)
		complaints.GET("/leaderboard", middleware.AdminOnly(), h.Leaderboard)
		complaints.GET("", middleware.AdminOnly(), h.AllComplaints)
		complaints.GET("/:id", h.ComplaintByID)
		complaints.PUT("/:id", middleware.AdminOnly(), h.UpdateComplaint)
	}

	announcements := authed.Group("/announcements")
	{
		announcements.GET("", h.VisibleAnnouncements)
		announcements.GET("/all", middleware.AdminOnly(), h.AllAnnouncements)
		announcements.POST("", h.CreateAnnouncement)
		announcements.GET("/:id", h.AnnouncementByID)
		announcements.PUT("/:id", middleware.AdminOnly(), h.UpdateAnnouncement)
		announcements.DELETE("/:id", middleware.AdminOnly(), h.DeleteAnnouncement)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}
