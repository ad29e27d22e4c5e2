// Package storage implements the persistence layer over PostgreSQL (GORM)
// with an optional Redis client for the submission throttle. Domain services
// consume it through their own narrow interfaces, which keeps them testable
// against in-memory substitutes.
package storage

import (
	"context"
	"errors"
	"fmt"

	"hostelops/backend/internal/config"
	"hostelops/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Service is the long-lived storage handle acquired at process start and
// passed explicitly into each component.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewService constructs a storage service. rdb may be nil, which disables
// the Redis-backed submission throttle.
func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{DB: db, Redis: rdb}
}

// SaveUser inserts or updates a user.
func (s *Service) SaveUser(ctx context.Context, user *models.User) error {
	return s.DB.WithContext(ctx).Save(user).Error
}

// GetUserByID returns a user by id, or nil when no row matches.
func (s *Service) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns a user by email, or nil when no row matches.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateComplaint inserts a new complaint.
func (s *Service) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	return s.DB.WithContext(ctx).Create(complaint).Error
}

// SaveComplaint persists the full complaint row. Concurrent saves of the
// same complaint are last-write-wins.
func (s *Service) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	return s.DB.WithContext(ctx).Save(complaint).Error
}

// GetComplaintByID returns a complaint with its submitter and assigned staff
// references resolved, or nil when no row matches.
func (s *Service) GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Preload("AssignedStaff").
		First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListComplaintsByStudent returns the student's complaints, newest first.
func (s *Service) ListComplaintsByStudent(ctx context.Context, studentID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// ComplaintFilter restricts an administrative listing. Empty fields impose
// no constraint; set fields are exact-match conjunctions.
type ComplaintFilter struct {
	Category string
	Status   string
	Priority string
}

// ListComplaints returns complaints matching the filter, newest first.
func (s *Service) ListComplaints(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error) {
	q := s.DB.WithContext(ctx).Preload("Student").Preload("AssignedStaff")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	var complaints []models.Complaint
	if err := q.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// RegisterSubmission records one complaint submission for the student and
// reports whether it is still within the allowed rate. Without Redis the
// throttle is disabled and every submission is allowed.
func (s *Service) RegisterSubmission(ctx context.Context, studentID string) (bool, error) {
	if s.Redis == nil {
		return true, nil
	}

	key := fmt.Sprintf("submit:%s", studentID)
	count, err := s.Redis.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.Redis.Expire(ctx, key, config.SubmitWindow).Err(); err != nil {
			return false, err
		}
	}
	return count <= config.SubmitLimit, nil
}

// Ping verifies connectivity to PostgreSQL and, when configured, Redis.
func (s *Service) Ping(ctx context.Context) error {
	db, err := s.DB.WithContext(ctx).DB()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
