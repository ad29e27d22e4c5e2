package config

import "time"

const (
	// Field limits
	MaxComplaintTitleLen       = 100
	MaxComplaintDescriptionLen = 1000
	MaxAdminRemarkLen          = 500
	MaxAnnouncementTitleLen    = 120
	MaxAnnouncementDescLen     = 2000

	// GeneralBlock is the sentinel target block used when a student author
	// has no hostel block on record.
	GeneralBlock = "General"

	// Leaderboards return at most this many rows.
	LeaderboardLimit = 5

	// Submission throttle: a student may file at most SubmitLimit complaints
	// per SubmitWindow. Enforced only when Redis is configured.
	SubmitLimit  = 5
	SubmitWindow = 10 * time.Minute
)

// Priority auto-detection keyword tiers. Matching is case-insensitive
// substring containment; the High tier always wins over Medium.
var (
	HighPriorityKeywords = []string{
		"urgent", "leak", "shock", "no water", "electric shock", "fire", "sparking",
	}
	MediumPriorityKeywords = []string{
		"not working", "broken", "damage", "issue",
	}
)
