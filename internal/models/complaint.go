package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintCategory is the maintenance category picked by the student.
type ComplaintCategory string

const (
	CategoryPlumbing    ComplaintCategory = "Plumbing"
	CategoryElectrical  ComplaintCategory = "Electrical"
	CategoryFurniture   ComplaintCategory = "Furniture"
	CategoryCleaning    ComplaintCategory = "Cleaning"
	CategoryInternet    ComplaintCategory = "Internet/WiFi"
	CategoryPestControl ComplaintCategory = "Pest Control"
	CategorySecurity    ComplaintCategory = "Security"
	CategoryOther       ComplaintCategory = "Other"
)

// ComplaintCategories lists every accepted category value.
var ComplaintCategories = []ComplaintCategory{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryFurniture,
	CategoryCleaning,
	CategoryInternet,
	CategoryPestControl,
	CategorySecurity,
	CategoryOther,
}

// Valid reports whether the category is one of the enumerated values.
func (c ComplaintCategory) Valid() bool {
	for _, v := range ComplaintCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ComplaintPriority is the severity of a complaint. PriorityUrgent is never
// produced by auto-detection; it is reachable only through an explicit
// administrative override.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "Low"
	PriorityMedium ComplaintPriority = "Medium"
	PriorityHigh   ComplaintPriority = "High"
	PriorityUrgent ComplaintPriority = "Urgent"
)

// Valid reports whether the priority is one of the enumerated values.
func (p ComplaintPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ComplaintStatus is the lifecycle state of a complaint. Transitions are
// unrestricted; the set-once timestamps are handled by the complaint service.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusRejected   ComplaintStatus = "Rejected"
)

// Valid reports whether the status is one of the enumerated values.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Complaint is a maintenance complaint filed by a student. Room number and
// hostel block are copied from the submitter at creation time so later
// profile edits do not rewrite history.
type Complaint struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	StudentID   string            `gorm:"type:text;not null;index" json:"studentId"`
	Student     *User             `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Title       string            `gorm:"type:text;not null" json:"title"`
	Description string            `gorm:"type:text;not null" json:"description"`
	Category    ComplaintCategory `gorm:"type:text;not null;index" json:"category"`
	Priority    ComplaintPriority `gorm:"type:text;not null;index" json:"priority"`
	Status      ComplaintStatus   `gorm:"type:text;not null;index" json:"status"`
	AdminRemark string            `gorm:"type:text" json:"adminRemark"`
	RoomNumber  string            `gorm:"type:text" json:"roomNumber"`
	HostelBlock string            `gorm:"type:text;index" json:"hostelBlock"`

	// AssignedStaffID and the two timestamps are set at most once and never
	// cleared, even if the status later moves backwards.
	AssignedStaffID *string    `gorm:"type:text;index" json:"assignedStaffId,omitempty"`
	AssignedStaff   *User      `gorm:"foreignKey:AssignedStaffID" json:"assignedStaff,omitempty"`
	AssignedAt      *time.Time `json:"assignedAt,omitempty"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate is a GORM hook that assigns a UUID and the default status.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = StatusPending
	}
	return
}
