package storage

import (
	"context"
	"errors"

	"hostelops/backend/internal/models"

	"gorm.io/gorm"
)

// CreateAnnouncement inserts a new announcement.
func (s *Service) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	return s.DB.WithContext(ctx).Create(a).Error
}

// SaveAnnouncement persists the full announcement row.
func (s *Service) SaveAnnouncement(ctx context.Context, a *models.Announcement) error {
	return s.DB.WithContext(ctx).Save(a).Error
}

// GetAnnouncementByID returns an announcement with its author resolved, or
// nil when no row matches.
func (s *Service) GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error) {
	var a models.Announcement
	err := s.DB.WithContext(ctx).
		Preload("CreatedBy").
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAnnouncements returns every announcement, newest first. Visibility
// filtering (active flag, expiry, block targeting) is done by the
// announcement service so it stays testable without a database.
func (s *Service) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := s.DB.WithContext(ctx).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// DeleteAnnouncement removes the announcement row. It reports whether a row
// was actually deleted.
func (s *Service) DeleteAnnouncement(ctx context.Context, id string) (bool, error) {
	result := s.DB.WithContext(ctx).Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
