package crew

// PointsToNext returns how many points separate the caller from the next
// tier's threshold. Zero when the ladder is topped out or the threshold is
// already met.
func PointsToNext(next *Tier, points int) int {
	if next == nil {
		return 0
	}

	gap := next.MinPoints - points
	if gap < 0 {
		return 0
	}
	return gap
}

// Progress returns the caller's position inside the current tier bracket as
// a percentage, clamped to [0, 100]. A missing next tier means the ladder is
// complete and progress is 100.
func Progress(current Tier, next *Tier, points int) float64 {
	if next == nil {
		return 100
	}

	tierRange := next.MinPoints - current.MinPoints
	if tierRange <= 0 {
		return 100
	}

	pct := float64(points-current.MinPoints) / float64(tierRange) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
