package handler

import (
	"net/http"

	"hostelops/backend/internal/apperrors"
	"hostelops/backend/internal/complaint"
	"hostelops/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// CreateComplaint handles POST /api/complaints.
func (h *Handler) CreateComplaint(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req complaint.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.NewValidation("Invalid request body"))
		return
	}

	created, err := h.Complaints.Create(c.Request.Context(), identity, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Complaint submitted successfully",
		"complaint": created,
	})
}

// MyComplaints handles GET /api/complaints/my.
func (h *Handler) MyComplaints(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	complaints, err := h.Complaints.ListForStudent(c.Request.Context(), identity)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(complaints),
		"complaints": complaints,
	})
}

// ComplaintByID handles GET /api/complaints/:id.
func (h *Handler) ComplaintByID(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	found, err := h.Complaints.GetVisibleTo(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"complaint": found,
	})
}

// AllComplaints handles GET /api/complaints with optional query filters.
func (h *Handler) AllComplaints(c *gin.Context) {
	filter := storage.ComplaintFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	complaints, err := h.Complaints.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(complaints),
		"complaints": complaints,
	})
}

// UpdateComplaint handles PUT /api/complaints/:id.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req complaint.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.NewValidation("Invalid request body"))
		return
	}

	updated, err := h.Complaints.UpdateByAdmin(c.Request.Context(), c.Param("id"), req, identity)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Complaint updated successfully",
		"complaint": updated,
	})
}

// ComplaintStats handles GET /api/complaints/stats.
func (h *Handler) ComplaintStats(c *gin.Context) {
	stats, err := h.Analytics.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// Leaderboard handles GET /api/complaints/leaderboard.
func (h *Handler) Leaderboard(c *gin.Context) {
	board, err := h.Analytics.Leaderboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"staffLeaderboard": board.Staff,
		"blockLeaderboard": board.Blocks,
	})
}
