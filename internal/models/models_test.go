package models_test

import (
	"testing"
	"time"

	"hostelops/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComplaintBeforeCreate verifies the hook assigns a UUID and the default
// Pending status without overwriting explicit values.
func TestComplaintBeforeCreate(t *testing.T) {
	c := &models.Complaint{StudentID: "student-1", Title: "Tap", Description: "broken tap"}

	require.NoError(t, c.BeforeCreate(nil))

	_, parseErr := uuid.Parse(c.ID)
	assert.NoError(t, parseErr, "ID must be a valid UUID")
	assert.Equal(t, models.StatusPending, c.Status)

	// Existing values survive the hook.
	existing := &models.Complaint{ID: "fixed-id", Status: models.StatusResolved}
	require.NoError(t, existing.BeforeCreate(nil))
	assert.Equal(t, "fixed-id", existing.ID)
	assert.Equal(t, models.StatusResolved, existing.Status)
}

// TestAnnouncementBeforeCreate verifies the hook assigns a UUID and enum
// defaults.
func TestAnnouncementBeforeCreate(t *testing.T) {
	a := &models.Announcement{Title: "Notice", Description: "desc"}

	require.NoError(t, a.BeforeCreate(nil))

	_, parseErr := uuid.Parse(a.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, models.AnnouncementGeneral, a.Category)
	assert.Equal(t, models.AnnouncementNormal, a.Priority)
}

// TestComplaintEnums verifies the enumerated value checks.
func TestComplaintEnums(t *testing.T) {
	assert.True(t, models.CategoryInternet.Valid())
	assert.True(t, models.ComplaintCategory("Pest Control").Valid())
	assert.False(t, models.ComplaintCategory("Gardening").Valid())

	assert.True(t, models.StatusInProgress.Valid())
	assert.False(t, models.ComplaintStatus("Started").Valid())

	assert.True(t, models.PriorityUrgent.Valid())
	assert.False(t, models.ComplaintPriority("Critical").Valid())
}

// TestAnnouncementExpiredAt verifies the derived expiry check.
func TestAnnouncementExpiredAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, (&models.Announcement{}).ExpiredAt(now), "no expiry date never expires")
	assert.True(t, (&models.Announcement{ExpiryDate: &past}).ExpiredAt(now))
	assert.False(t, (&models.Announcement{ExpiryDate: &future}).ExpiredAt(now))
}

// TestIdentityRoles verifies the role helpers.
func TestIdentityRoles(t *testing.T) {
	assert.True(t, models.Identity{Role: models.RoleAdmin}.IsAdmin())
	assert.False(t, models.Identity{Role: models.RoleAdmin}.IsStudent())
	assert.True(t, models.Identity{Role: models.RoleStudent}.IsStudent())
	assert.False(t, models.Identity{Role: "staff"}.IsAdmin())
}
