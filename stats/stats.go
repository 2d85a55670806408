// Package stats derives reporting statistics from stored issue and user
// counts. Summaries are pure functions over per-status counts so the same
// math serves both the personal and the global views.
package stats

import (
	"math"

	"civicconnect-be/models"
)

// Summary aggregates issue counts for one reporter or for the whole store.
type Summary struct {
	Total          int64 `json:"total"`
	Reported       int64 `json:"reported"`
	Confirmed      int64 `json:"confirmed"`
	InProgress     int64 `json:"inProgress"`
	Resolved       int64 `json:"resolved"`
	Pending        int64 `json:"pending"`
	ResolutionRate int   `json:"resolutionRate"`
}

// Overview is the admin dashboard snapshot: global issue counts plus the
// registered user total.
type Overview struct {
	Summary
	TotalUsers int64 `json:"totalUsers"`
}

// Summarize folds per-status counts into a Summary. Pending counts every
// non-resolved issue. The resolution rate is resolved/total rounded to the
// nearest whole percent, and 0 when there are no issues.
func Summarize(counts map[models.IssueStatus]int64) Summary {
	s := Summary{
		Reported:   counts[models.Reported],
		Confirmed:  counts[models.Confirmed],
		InProgress: counts[models.InProgress],
		Resolved:   counts[models.Resolved],
	}
	s.Pending = s.Reported + s.Confirmed + s.InProgress
	s.Total = s.Pending + s.Resolved

	if s.Total > 0 {
		s.ResolutionRate = int(math.Round(float64(s.Resolved) / float64(s.Total) * 100))
	}

	return s
}
