package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementCategory groups announcements for the portal dashboard.
type AnnouncementCategory string

const (
	AnnouncementWater       AnnouncementCategory = "Water"
	AnnouncementElectricity AnnouncementCategory = "Electricity"
	AnnouncementMess        AnnouncementCategory = "Mess"
	AnnouncementInspection  AnnouncementCategory = "Inspection"
	AnnouncementGeneral     AnnouncementCategory = "General"
)

// Valid reports whether the category is one of the enumerated values.
func (c AnnouncementCategory) Valid() bool {
	switch c {
	case AnnouncementWater, AnnouncementElectricity, AnnouncementMess,
		AnnouncementInspection, AnnouncementGeneral:
		return true
	}
	return false
}

// AnnouncementPriority is the display urgency of an announcement.
type AnnouncementPriority string

const (
	AnnouncementNormal    AnnouncementPriority = "Normal"
	AnnouncementImportant AnnouncementPriority = "Important"
	AnnouncementUrgent    AnnouncementPriority = "Urgent"
)

// Valid reports whether the priority is one of the enumerated values.
func (p AnnouncementPriority) Valid() bool {
	switch p {
	case AnnouncementNormal, AnnouncementImportant, AnnouncementUrgent:
		return true
	}
	return false
}

// Announcement is a notice published to residents. A nil TargetBlock means
// the announcement is visible to every block; a nil ExpiryDate means it
// never expires. Expiry is a read-time filter, expired rows are kept.
type Announcement struct {
	ID          string               `gorm:"primaryKey" json:"id"`
	Title       string               `gorm:"type:text;not null" json:"title"`
	Description string               `gorm:"type:text;not null" json:"description"`
	Category    AnnouncementCategory `gorm:"type:text;not null" json:"category"`
	Priority    AnnouncementPriority `gorm:"type:text;not null" json:"priority"`
	TargetBlock *string              `gorm:"type:text;index" json:"targetBlock"`
	CreatedByID string               `gorm:"type:text;not null" json:"createdById"`
	CreatedBy   *User                `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	ExpiryDate  *time.Time           `json:"expiryDate"`
	IsActive    bool                 `gorm:"not null;default:true" json:"isActive"`

	// IsExpired is derived on read, never stored.
	IsExpired bool `gorm:"-" json:"isExpired"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate is a GORM hook that assigns a UUID and enum defaults.
func (a *Announcement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Category == "" {
		a.Category = AnnouncementGeneral
	}
	if a.Priority == "" {
		a.Priority = AnnouncementNormal
	}
	return
}

// ExpiredAt reports whether the announcement is expired at the given time.
// An announcement without an expiry date never expires.
func (a *Announcement) ExpiredAt(now time.Time) bool {
	return a.ExpiryDate != nil && now.After(*a.ExpiryDate)
}
