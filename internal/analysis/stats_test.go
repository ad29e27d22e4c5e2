package analysis_test

import (
	"context"
	"errors"
	"testing"

	"hostelops/backend/internal/analysis"
	"hostelops/backend/internal/models"
	"hostelops/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore feeds the analytics service deterministic aggregation rows.
type mockStore struct {
	countsByStatus map[models.ComplaintStatus]int64
	byCategory     []storage.CategoryCount
	byPriority     []storage.PriorityCount
	staffRows      []storage.StaffResolution
	blockRows      []storage.BlockStat
	failCounts     bool

	staffLimit int
	blockLimit int
}

func (m *mockStore) CountComplaints(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	if m.failCounts {
		return 0, errors.New("count query failed")
	}
	return m.countsByStatus[status], nil
}

func (m *mockStore) CountComplaintsByCategory(ctx context.Context) ([]storage.CategoryCount, error) {
	return m.byCategory, nil
}

func (m *mockStore) CountComplaintsByPriority(ctx context.Context) ([]storage.PriorityCount, error) {
	return m.byPriority, nil
}

func (m *mockStore) StaffResolutionStats(ctx context.Context, limit int) ([]storage.StaffResolution, error) {
	m.staffLimit = limit
	return m.staffRows, nil
}

func (m *mockStore) BlockComplaintStats(ctx context.Context, limit int) ([]storage.BlockStat, error) {
	m.blockLimit = limit
	return m.blockRows, nil
}

// TestStats_Assembly verifies that the stats payload is assembled from the
// independent count queries and the grouped rows.
func TestStats_Assembly(t *testing.T) {
	store := &mockStore{
		countsByStatus: map[models.ComplaintStatus]int64{
			"":                      10,
			models.StatusPending:    4,
			models.StatusInProgress: 3,
			models.StatusResolved:   2,
			models.StatusRejected:   1,
		},
		byCategory: []storage.CategoryCount{
			{Category: models.CategoryPlumbing, Count: 6},
			{Category: models.CategoryElectrical, Count: 4},
		},
		byPriority: []storage.PriorityCount{
			{Priority: models.PriorityHigh, Count: 5},
			{Priority: models.PriorityLow, Count: 5},
		},
	}
	svc := analysis.NewService(store)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.Pending)
	assert.Equal(t, int64(3), stats.InProgress)
	assert.Equal(t, int64(2), stats.Resolved)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Len(t, stats.ByCategory, 2)
	assert.Equal(t, models.CategoryPlumbing, stats.ByCategory[0].Category)
	assert.Len(t, stats.ByPriority, 2)
}

// TestStats_PropagatesStorageError verifies a failed count query surfaces.
func TestStats_PropagatesStorageError(t *testing.T) {
	svc := analysis.NewService(&mockStore{failCounts: true})

	stats, err := svc.Stats(context.Background())

	assert.Error(t, err)
	assert.Nil(t, stats)
}

// TestLeaderboard_StaffFormatting verifies that grouped staff rows are
// decorated with the human-readable average duration.
func TestLeaderboard_StaffFormatting(t *testing.T) {
	store := &mockStore{
		staffRows: []storage.StaffResolution{
			// Mean of 60000, 120000 and 180000 ms.
			{StaffID: "staff-x", Name: "Staff X", AvgTimeMs: 120000, TotalResolved: 3},
			{StaffID: "staff-y", Name: "Staff Y", AvgTimeMs: 9000000, TotalResolved: 1},
		},
		blockRows: []storage.BlockStat{
			{Block: "B2", TotalComplaints: 2, ResolvedCount: 2},
			{Block: "B1", TotalComplaints: 7, ResolvedCount: 3},
		},
	}
	svc := analysis.NewService(store)

	board, err := svc.Leaderboard(context.Background())

	require.NoError(t, err)
	require.Len(t, board.Staff, 2)
	assert.Equal(t, "Staff X", board.Staff[0].Name)
	assert.Equal(t, "0h 2m", board.Staff[0].AvgTime)
	assert.Equal(t, int64(3), board.Staff[0].TotalResolved)
	assert.Equal(t, "2h 30m", board.Staff[1].AvgTime)

	require.Len(t, board.Blocks, 2)
	assert.Equal(t, "B2", board.Blocks[0].Block)

	// Both queries are capped at the top five.
	assert.Equal(t, 5, store.staffLimit)
	assert.Equal(t, 5, store.blockLimit)
}

// TestLeaderboard_Empty verifies empty populations produce empty, non-nil
// leaderboards.
func TestLeaderboard_Empty(t *testing.T) {
	svc := analysis.NewService(&mockStore{})

	board, err := svc.Leaderboard(context.Background())

	require.NoError(t, err)
	assert.Empty(t, board.Staff)
	assert.Empty(t, board.Blocks)
}
