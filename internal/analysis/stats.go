package analysis

import (
	"context"

	"hostelops/backend/internal/config"
	"hostelops/backend/internal/models"
	"hostelops/backend/internal/storage"
)

// Store is the aggregation capability the analytics service needs from the
// storage layer. Kept narrow so tests can feed deterministic in-memory rows.
type Store interface {
	CountComplaints(ctx context.Context, status models.ComplaintStatus) (int64, error)
	CountComplaintsByCategory(ctx context.Context) ([]storage.CategoryCount, error)
	CountComplaintsByPriority(ctx context.Context) ([]storage.PriorityCount, error)
	StaffResolutionStats(ctx context.Context, limit int) ([]storage.StaffResolution, error)
	BlockComplaintStats(ctx context.Context, limit int) ([]storage.BlockStat, error)
}

// Service computes the administrator statistics and leaderboards.
type Service struct {
	Storage Store
}

// NewService creates a new analytics service.
func NewService(s Store) *Service {
	return &Service{Storage: s}
}

// ComplaintStats is the statistics payload. The per-status counts are
// independent count queries, not mutually exclusive buckets.
type ComplaintStats struct {
	Total      int64                   `json:"total"`
	Pending    int64                   `json:"pending"`
	InProgress int64                   `json:"inProgress"`
	Resolved   int64                   `json:"resolved"`
	Rejected   int64                   `json:"rejected"`
	ByCategory []storage.CategoryCount `json:"byCategory"`
	ByPriority []storage.PriorityCount `json:"byPriority"`
}

// StaffEntry is one row of the staff leaderboard, fastest resolvers first.
type StaffEntry struct {
	Name          string  `json:"name"`
	AvgTimeMs     float64 `json:"avgTimeMs"`
	AvgTime       string  `json:"avgTime"`
	TotalResolved int64   `json:"totalResolved"`
}

// Leaderboard holds both admin leaderboards.
type Leaderboard struct {
	Staff  []StaffEntry        `json:"staffLeaderboard"`
	Blocks []storage.BlockStat `json:"blockLeaderboard"`
}

// Stats computes the total and per-status counts plus the category and
// priority groupings.
func (s *Service) Stats(ctx context.Context) (*ComplaintStats, error) {
	stats := &ComplaintStats{}

	var err error
	if stats.Total, err = s.Storage.CountComplaints(ctx, ""); err != nil {
		return nil, err
	}
	if stats.Pending, err = s.Storage.CountComplaints(ctx, models.StatusPending); err != nil {
		return nil, err
	}
	if stats.InProgress, err = s.Storage.CountComplaints(ctx, models.StatusInProgress); err != nil {
		return nil, err
	}
	if stats.Resolved, err = s.Storage.CountComplaints(ctx, models.StatusResolved); err != nil {
		return nil, err
	}
	if stats.Rejected, err = s.Storage.CountComplaints(ctx, models.StatusRejected); err != nil {
		return nil, err
	}
	if stats.ByCategory, err = s.Storage.CountComplaintsByCategory(ctx); err != nil {
		return nil, err
	}
	if stats.ByPriority, err = s.Storage.CountComplaintsByPriority(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// Leaderboard computes the staff leaderboard (fastest average resolution
// first) and the block leaderboard (fewest complaints first), each capped at
// the configured limit.
func (s *Service) Leaderboard(ctx context.Context) (*Leaderboard, error) {
	staffRows, err := s.Storage.StaffResolutionStats(ctx, config.LeaderboardLimit)
	if err != nil {
		return nil, err
	}

	staff := make([]StaffEntry, 0, len(staffRows))
	for _, row := range staffRows {
		staff = append(staff, StaffEntry{
			Name:          row.Name,
			AvgTimeMs:     row.AvgTimeMs,
			AvgTime:       FormatResolutionTime(row.AvgTimeMs),
			TotalResolved: row.TotalResolved,
		})
	}

	blocks, err := s.Storage.BlockComplaintStats(ctx, config.LeaderboardLimit)
	if err != nil {
		return nil, err
	}

	return &Leaderboard{Staff: staff, Blocks: blocks}, nil
}
