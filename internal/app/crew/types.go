/*
Package crew is the data gateway for the HPZ Crew loyalty data.

It reads point totals, the tier ladder, missions, activities, and upgrade
requirement counters from Postgres, and exposes them as read-only snapshot
values. Snapshots are fetched fresh on every call; nothing is cached.
*/
package crew

import "time"

// Tier is one named bracket of the point-threshold ladder.
type Tier struct {
	Name      string   `json:"name"`
	MinPoints int      `json:"minPoints"`
	MaxPoints *int     `json:"maxPoints,omitempty"`
	Color     string   `json:"color"`
	Benefits  []string `json:"benefits"`
}

// Activity is one recorded point-earning event.
type Activity struct {
	Description string    `json:"description"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"-"`
}

// PointsSnapshot is the read-only projection behind /poinku.
type PointsSnapshot struct {
	Points       int
	TierName     string
	PointsToNext int
	Recent       []Activity
}

// Mission is one active community mission.
type Mission struct {
	ID           int64
	Title        string
	Description  string
	RewardPoints int
	Type         string
	Status       string
	EndDate      time.Time
}

// MissionsSnapshot groups active missions by cadence, each list ordered by
// end date ascending.
type MissionsSnapshot struct {
	Weekly  []Mission
	Monthly []Mission
}

// TierSnapshot is the read-only projection behind /tierku. Next is nil at
// the top of the ladder.
type TierSnapshot struct {
	Current       Tier
	Next          *Tier
	CurrentPoints int
	PointsNeeded  int
	Progress      float64
}

// UpgradeCounters are the four requirement counters shown by /upgrade.
type UpgradeCounters struct {
	ApprovedContent int
	AffiliateSales  int
	MembershipDays  int
	Referrals       int
}

// UpgradeSnapshot is the read-only projection behind /upgrade. Next is nil
// when the caller already sits at the top tier.
type UpgradeSnapshot struct {
	CurrentTier   string
	Next          *Tier
	CurrentPoints int
	Counters      UpgradeCounters
}
