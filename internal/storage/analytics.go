package storage

import (
	"context"

	"hostelops/backend/internal/models"
)

// CategoryCount is one grouped row of the category statistics.
type CategoryCount struct {
	Category models.ComplaintCategory `json:"category"`
	Count    int64                    `json:"count"`
}

// PriorityCount is one grouped row of the priority statistics.
type PriorityCount struct {
	Priority models.ComplaintPriority `json:"priority"`
	Count    int64                    `json:"count"`
}

// StaffResolution is one grouped row of the staff leaderboard query: a staff
// member with the mean resolution duration in milliseconds across their
// resolved complaints.
type StaffResolution struct {
	StaffID       string  `json:"staffId"`
	Name          string  `json:"name"`
	AvgTimeMs     float64 `json:"avgTimeMs"`
	TotalResolved int64   `json:"totalResolved"`
}

// BlockStat is one grouped row of the block leaderboard query.
type BlockStat struct {
	Block           string `json:"block"`
	TotalComplaints int64  `json:"totalComplaints"`
	ResolvedCount   int64  `json:"resolvedCount"`
}

// CountComplaints counts all complaints, or only those in the given status.
func (s *Service) CountComplaints(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	q := s.DB.WithContext(ctx).Model(&models.Complaint{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountComplaintsByCategory groups complaint counts by category,
// descending by count.
func (s *Service) CountComplaintsByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := s.DB.WithContext(ctx).
		Model(&models.Complaint{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountComplaintsByPriority groups complaint counts by priority.
func (s *Service) CountComplaintsByPriority(ctx context.Context) ([]PriorityCount, error) {
	var rows []PriorityCount
	err := s.DB.WithContext(ctx).
		Model(&models.Complaint{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// StaffResolutionStats groups resolved complaints by assigned staff, joins
// the staff name, and returns the fastest resolvers first, at most limit rows.
func (s *Service) StaffResolutionStats(ctx context.Context, limit int) ([]StaffResolution, error) {
	rawSQL := `
		SELECT c.assigned_staff_id                                        AS staff_id,
		       u.name                                                     AS name,
		       AVG(EXTRACT(EPOCH FROM (c.resolved_at - c.assigned_at)) * 1000) AS avg_time_ms,
		       COUNT(*)                                                   AS total_resolved
		FROM complaints c
		JOIN users u ON u.id = c.assigned_staff_id
		WHERE c.status = ?
		  AND c.resolved_at IS NOT NULL
		  AND c.assigned_at IS NOT NULL
		  AND c.assigned_staff_id IS NOT NULL
		GROUP BY c.assigned_staff_id, u.name
		ORDER BY avg_time_ms ASC
		LIMIT ?
	`

	var rows []StaffResolution
	err := s.DB.WithContext(ctx).Raw(rawSQL, models.StatusResolved, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// BlockComplaintStats groups complaints by hostel block with total and
// resolved counts, fewest complaints first, at most limit rows.
func (s *Service) BlockComplaintStats(ctx context.Context, limit int) ([]BlockStat, error) {
	rawSQL := `
		SELECT hostel_block                                   AS block,
		       COUNT(*)                                       AS total_complaints,
		       COUNT(*) FILTER (WHERE status = ?)             AS resolved_count
		FROM complaints
		WHERE hostel_block IS NOT NULL AND hostel_block <> ''
		GROUP BY hostel_block
		ORDER BY total_complaints ASC
		LIMIT ?
	`

	var rows []BlockStat
	err := s.DB.WithContext(ctx).Raw(rawSQL, models.StatusResolved, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
