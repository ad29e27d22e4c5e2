// Package announcement owns announcement publishing and the read-time
// visibility rules: active flag, expiry, and per-block targeting.
package announcement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hostelops/backend/internal/apperrors"
	"hostelops/backend/internal/config"
	"hostelops/backend/internal/models"
)

// Store is the persistence capability the announcement service needs.
type Store interface {
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	SaveAnnouncement(ctx context.Context, a *models.Announcement) error
	GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) (bool, error)
}

// Service handles the business logic for announcements.
type Service struct {
	Storage Store

	now func() time.Time
}

// NewService creates a new announcement service.
func NewService(s Store) *Service {
	return &Service{Storage: s, now: time.Now}
}

// CreateRequest is the announcement creation payload.
type CreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	TargetBlock *string    `json:"targetBlock"`
	ExpiryDate  *time.Time `json:"expiryDate"`
}

// Create publishes an announcement. Student authors always target their own
// block (or the General sentinel if they have none), regardless of the
// requested target block; only admins can broadcast portal-wide.
func (s *Service) Create(ctx context.Context, author models.Identity, req CreateRequest) (*models.Announcement, error) {
	if err := validateFields(req.Title, req.Description); err != nil {
		return nil, err
	}

	category := models.AnnouncementCategory(req.Category)
	if req.Category != "" && !category.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("Invalid category: %s", req.Category))
	}
	priority := models.AnnouncementPriority(req.Priority)
	if req.Priority != "" && !priority.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("Invalid priority: %s", req.Priority))
	}

	targetBlock := req.TargetBlock
	if author.IsStudent() {
		block := author.HostelBlock
		if block == "" {
			block = config.GeneralBlock
		}
		targetBlock = &block
	}

	a := &models.Announcement{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Priority:    priority,
		TargetBlock: targetBlock,
		CreatedByID: author.UserID,
		ExpiryDate:  req.ExpiryDate,
		IsActive:    true,
	}

	if err := s.Storage.CreateAnnouncement(ctx, a); err != nil {
		return nil, err
	}

	created, err := s.Storage.GetAnnouncementByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return a, nil
	}
	created.IsExpired = created.ExpiredAt(s.now())
	return created, nil
}

// ListVisible returns the announcements the caller may see: active and not
// expired, and for students with a known block, only portal-wide or
// own-block notices. Newest first.
func (s *Service) ListVisible(ctx context.Context, viewer models.Identity) ([]models.Announcement, error) {
	all, err := s.Storage.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	return FilterVisible(all, viewer, s.now()), nil
}

// ListAll returns every announcement including inactive and expired ones,
// newest first. Admin-only at the route level.
func (s *Service) ListAll(ctx context.Context) ([]models.Announcement, error) {
	all, err := s.Storage.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range all {
		all[i].IsExpired = all[i].ExpiredAt(now)
	}
	return all, nil
}

// Get returns a single announcement by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Announcement, error) {
	a, err := s.Storage.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFound("Announcement")
	}
	a.IsExpired = a.ExpiredAt(s.now())
	return a, nil
}

// UpdateRequest is the administrative update payload. Nil fields are left
// untouched; a non-nil empty TargetBlock clears the targeting.
type UpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	TargetBlock *string    `json:"targetBlock"`
	ExpiryDate  *time.Time `json:"expiryDate"`
	ClearExpiry bool       `json:"clearExpiry"`
	IsActive    *bool      `json:"isActive"`
}

// Update applies the present fields to the announcement.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*models.Announcement, error) {
	a, err := s.Storage.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFound("Announcement")
	}

	if req.Title != nil {
		if err := validateFields(*req.Title, a.Description); err != nil {
			return nil, err
		}
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if err := validateFields(a.Title, *req.Description); err != nil {
			return nil, err
		}
		a.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		category := models.AnnouncementCategory(*req.Category)
		if !category.Valid() {
			return nil, apperrors.NewValidation(fmt.Sprintf("Invalid category: %s", *req.Category))
		}
		a.Category = category
	}
	if req.Priority != nil {
		priority := models.AnnouncementPriority(*req.Priority)
		if !priority.Valid() {
			return nil, apperrors.NewValidation(fmt.Sprintf("Invalid priority: %s", *req.Priority))
		}
		a.Priority = priority
	}
	if req.TargetBlock != nil {
		if *req.TargetBlock == "" {
			a.TargetBlock = nil
		} else {
			a.TargetBlock = req.TargetBlock
		}
	}
	if req.ExpiryDate != nil {
		a.ExpiryDate = req.ExpiryDate
	} else if req.ClearExpiry {
		a.ExpiryDate = nil
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.Storage.SaveAnnouncement(ctx, a); err != nil {
		return nil, err
	}
	a.IsExpired = a.ExpiredAt(s.now())
	return a, nil
}

// Delete removes an announcement permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.Storage.DeleteAnnouncement(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Announcement")
	}
	return nil
}

// FilterVisible applies the read-time visibility rules to a list that is
// already sorted newest first. Admins and students without a recorded block
// see every active, non-expired announcement; students with a block also
// need the announcement to be portal-wide or aimed at their block.
func FilterVisible(all []models.Announcement, viewer models.Identity, now time.Time) []models.Announcement {
	restrictToBlock := viewer.IsStudent() && viewer.HostelBlock != ""

	visible := make([]models.Announcement, 0, len(all))
	for _, a := range all {
		if !a.IsActive {
			continue
		}
		// Expiry must be strictly in the future to stay visible.
		if a.ExpiryDate != nil && !a.ExpiryDate.After(now) {
			continue
		}
		if restrictToBlock && a.TargetBlock != nil && *a.TargetBlock != viewer.HostelBlock {
			continue
		}
		a.IsExpired = false
		visible = append(visible, a)
	}
	return visible
}

func validateFields(title, description string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return apperrors.NewValidation("Title is required")
	}
	if len(title) > config.MaxAnnouncementTitleLen {
		return apperrors.NewValidation(fmt.Sprintf("Title cannot exceed %d characters", config.MaxAnnouncementTitleLen))
	}
	if description == "" {
		return apperrors.NewValidation("Description is required")
	}
	if len(description) > config.MaxAnnouncementDescLen {
		return apperrors.NewValidation(fmt.Sprintf("Description cannot exceed %d characters", config.MaxAnnouncementDescLen))
	}
	return nil
}
