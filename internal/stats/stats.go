// Package stats derives the dashboard counters from a donation set. Nothing
// is cached here; callers recompute from the current set on every read.
package stats

import (
	"time"

	"unityeats/internal/models"
)

type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Collected int `json:"collected"`
	Expired   int `json:"expired"`
}

// Aggregate counts donations by their status as of now, in a single pass.
// Total always equals the sum of the four buckets.
func Aggregate(donations []models.Donation, now time.Time) Summary {
	var s Summary
	for _, d := range donations {
		s.Total++
		switch d.EffectiveStatus(now) {
		case models.DonationPending:
			s.Pending++
		case models.DonationAccepted:
			s.Accepted++
		case models.DonationCollected:
			s.Collected++
		case models.DonationExpired:
			s.Expired++
		}
	}
	return s
}
