// Package analysis provides the pure complaint-analysis logic: severity
// auto-detection from free text and the administrator-facing statistics and
// leaderboard computations.
package analysis

import (
	"fmt"
	"strings"

	"hostelops/backend/internal/config"
	"hostelops/backend/internal/models"
)

// DetectPriority maps a free-text description to a severity. Matching is
// case-insensitive substring containment over two fixed keyword tiers; the
// first matching tier wins. It never returns Urgent, which is reserved for
// explicit administrative override. This runs once at complaint creation;
// later edits do not re-trigger it.
func DetectPriority(description string) models.ComplaintPriority {
	desc := strings.ToLower(description)

	for _, key := range config.HighPriorityKeywords {
		if strings.Contains(desc, key) {
			return models.PriorityHigh
		}
	}
	for _, key := range config.MediumPriorityKeywords {
		if strings.Contains(desc, key) {
			return models.PriorityMedium
		}
	}
	return models.PriorityLow
}

// FormatResolutionTime renders an average duration in milliseconds as
// "{whole hours}h {remaining minutes}m", e.g. 9000000 -> "2h 30m".
func FormatResolutionTime(avgMs float64) string {
	hours := int64(avgMs) / 3_600_000
	minutes := (int64(avgMs) % 3_600_000) / 60_000
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
