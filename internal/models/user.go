package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies a portal account. Authentication itself lives in the
// external auth service; this entity exists so complaints and announcements
// can reference and join against their authors.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is the reference entity for students, staff and administrators.
type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Role        Role   `gorm:"type:text;not null;default:student" json:"role"`
	RoomNumber  string `gorm:"type:text" json:"roomNumber"`
	HostelBlock string `gorm:"type:text" json:"hostelBlock"`
}

// BeforeCreate is a GORM hook that assigns a UUID if the ID is not set.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
