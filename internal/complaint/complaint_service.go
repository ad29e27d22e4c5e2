// Package complaint owns the complaint lifecycle: creation with priority
// auto-detection, administrative triage updates with their set-once
// timestamps, and the student/admin read paths.
package complaint

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hostelops/backend/internal/analysis"
	"hostelops/backend/internal/apperrors"
	"hostelops/backend/internal/config"
	"hostelops/backend/internal/models"
	"hostelops/backend/internal/storage"
)

// Store is the persistence capability the complaint service needs.
type Store interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	SaveComplaint(ctx context.Context, complaint *models.Complaint) error
	GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error)
	ListComplaintsByStudent(ctx context.Context, studentID string) ([]models.Complaint, error)
	ListComplaints(ctx context.Context, filter storage.ComplaintFilter) ([]models.Complaint, error)
	RegisterSubmission(ctx context.Context, studentID string) (bool, error)
}

// Service handles the business logic for complaints.
type Service struct {
	Storage Store

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewService creates a new complaint service.
func NewService(s Store) *Service {
	return &Service{Storage: s, now: time.Now}
}

// CreateRequest is the student submission payload.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Create files a new complaint for the submitter. Priority is auto-detected
// from the description and persisted; the submitter's room and block are
// stamped onto the complaint.
func (s *Service) Create(ctx context.Context, submitter models.Identity, req CreateRequest) (*models.Complaint, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	allowed, err := s.Storage.RegisterSubmission(ctx, submitter.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrTooManyRequests
	}

	complaint := &models.Complaint{
		StudentID:   submitter.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    models.ComplaintCategory(req.Category),
		Priority:    analysis.DetectPriority(req.Description),
		Status:      models.StatusPending,
		RoomNumber:  submitter.RoomNumber,
		HostelBlock: submitter.HostelBlock,
	}

	if err := s.Storage.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}

	// Reload so the submitter reference is resolved in the response.
	created, err := s.Storage.GetComplaintByID(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return complaint, nil
	}
	return created, nil
}

// UpdateRequest is the administrative triage payload. Nil fields are left
// untouched.
type UpdateRequest struct {
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AdminRemark *string `json:"adminRemark"`
}

// UpdateByAdmin applies the present fields to the complaint and the set-once
// side effects: entering In Progress stamps assignedAt and assigns the
// acting admin if nobody is assigned yet; entering Resolved stamps
// resolvedAt. Both timestamps are set at most once and never cleared.
func (s *Service) UpdateByAdmin(ctx context.Context, id string, req UpdateRequest, actor models.Identity) (*models.Complaint, error) {
	complaint, err := s.Storage.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperrors.NewNotFound("Complaint")
	}

	if req.Status != nil {
		status := models.ComplaintStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidation(fmt.Sprintf("Invalid status: %s", *req.Status))
		}
		complaint.Status = status

		if status == models.StatusInProgress && complaint.AssignedAt == nil {
			now := s.now()
			complaint.AssignedAt = &now
			if complaint.AssignedStaffID == nil {
				staffID := actor.UserID
				complaint.AssignedStaffID = &staffID
			}
		}
		if status == models.StatusResolved && complaint.ResolvedAt == nil {
			now := s.now()
			complaint.ResolvedAt = &now
		}
	}
	if req.Priority != nil {
		priority := models.ComplaintPriority(*req.Priority)
		if !priority.Valid() {
			return nil, apperrors.NewValidation(fmt.Sprintf("Invalid priority: %s", *req.Priority))
		}
		complaint.Priority = priority
	}
	if req.AdminRemark != nil {
		if len(*req.AdminRemark) > config.MaxAdminRemarkLen {
			return nil, apperrors.NewValidation(fmt.Sprintf("Remark cannot exceed %d characters", config.MaxAdminRemarkLen))
		}
		complaint.AdminRemark = *req.AdminRemark
	}

	if err := s.Storage.SaveComplaint(ctx, complaint); err != nil {
		return nil, err
	}

	updated, err := s.Storage.GetComplaintByID(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return complaint, nil
	}
	return updated, nil
}

// GetVisibleTo returns a single complaint. Students may only view their own.
func (s *Service) GetVisibleTo(ctx context.Context, viewer models.Identity, id string) (*models.Complaint, error) {
	complaint, err := s.Storage.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperrors.NewNotFound("Complaint")
	}
	if viewer.IsStudent() && complaint.StudentID != viewer.UserID {
		return nil, apperrors.NewForbidden("")
	}
	return complaint, nil
}

// ListForStudent returns the caller's own complaints, newest first.
func (s *Service) ListForStudent(ctx context.Context, viewer models.Identity) ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByStudent(ctx, viewer.UserID)
}

// ListAll returns complaints matching the administrative filter, newest first.
func (s *Service) ListAll(ctx context.Context, filter storage.ComplaintFilter) ([]models.Complaint, error) {
	return s.Storage.ListComplaints(ctx, filter)
}

func validateCreate(req CreateRequest) error {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if title == "" {
		return apperrors.NewValidation("Title is required")
	}
	if len(title) > config.MaxComplaintTitleLen {
		return apperrors.NewValidation(fmt.Sprintf("Title cannot exceed %d characters", config.MaxComplaintTitleLen))
	}
	if description == "" {
		return apperrors.NewValidation("Description is required")
	}
	if len(description) > config.MaxComplaintDescriptionLen {
		return apperrors.NewValidation(fmt.Sprintf("Description cannot exceed %d characters", config.MaxComplaintDescriptionLen))
	}
	if req.Category == "" {
		return apperrors.NewValidation("Category is required")
	}
	if !models.ComplaintCategory(req.Category).Valid() {
		return apperrors.NewValidation(fmt.Sprintf("Invalid category: %s", req.Category))
	}
	return nil
}
