// Package handler contains the gin handlers for the portal API. Handlers
// bind and authorize requests, delegate to the domain services, and render
// the `{success, message?, ...}` response envelope; all failure taxonomy
// decisions arrive here as apperrors values.
package handler

import (
	"errors"
	"net/http"

	"hostelops/backend/internal/analysis"
	"hostelops/backend/internal/announcement"
	"hostelops/backend/internal/apperrors"
	"hostelops/backend/internal/api/middleware"
	"hostelops/backend/internal/complaint"
	"hostelops/backend/internal/logger"
	"hostelops/backend/internal/models"
	"hostelops/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler bundles the domain services behind the HTTP surface.
type Handler struct {
	Complaints    *complaint.Service
	Announcements *announcement.Service
	Analytics     *analysis.Service
	Store         *storage.Service
	Log           *logger.Logger
}

// New creates the API handler.
func New(
	complaints *complaint.Service,
	announcements *announcement.Service,
	analytics *analysis.Service,
	store *storage.Service,
	log *logger.Logger,
) *Handler {
	return &Handler{
		Complaints:    complaints,
		Announcements: announcements,
		Analytics:     analytics,
		Store:         store,
		Log:           log,
	}
}

// identity returns the authenticated caller, aborting with 401 when the
// auth middleware did not run.
func (h *Handler) identity(c *gin.Context) (models.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authorization required",
		})
	}
	return id, ok
}

// fail maps a service error onto the response envelope and status code.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case apperrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperrors.ErrTooManyRequests):
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": err.Error()})
	default:
		h.Log.Error("request failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
	}
}

// Health reports API liveness and backing-store connectivity.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Storage unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "HostelOps API is running",
	})
}
