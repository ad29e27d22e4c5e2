package handler

import (
	"net/http"

	"hostelops/backend/internal/announcement"
	"hostelops/backend/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// CreateAnnouncement handles POST /api/announcements. Student authors are
// always restricted to their own block inside the service.
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req announcement.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.NewValidation("Invalid request body"))
		return
	}

	created, err := h.Announcements.Create(c.Request.Context(), identity, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Announcement created successfully",
		"announcement": created,
	})
}

// VisibleAnnouncements handles GET /api/announcements.
func (h *Handler) VisibleAnnouncements(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	announcements, err := h.Announcements.ListVisible(c.Request.Context(), identity)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(announcements),
		"announcements": announcements,
	})
}

// AllAnnouncements handles GET /api/announcements/all (admin view with
// expired and inactive rows included).
func (h *Handler) AllAnnouncements(c *gin.Context) {
	announcements, err := h.Announcements.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"count":         len(announcements),
		"announcements": announcements,
	})
}

// AnnouncementByID handles GET /api/announcements/:id.
func (h *Handler) AnnouncementByID(c *gin.Context) {
	found, err := h.Announcements.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"announcement": found,
	})
}

// UpdateAnnouncement handles PUT /api/announcements/:id.
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	var req announcement.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.NewValidation("Invalid request body"))
		return
	}

	updated, err := h.Announcements.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Announcement updated successfully",
		"announcement": updated,
	})
}

// DeleteAnnouncement handles DELETE /api/announcements/:id.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	if err := h.Announcements.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Announcement deleted successfully",
	})
}
