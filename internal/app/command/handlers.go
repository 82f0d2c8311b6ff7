package command

import (
	"context"
	"fmt"
	"math"
	"time"

	"hpzbot/internal/app/crew"
	"hpzbot/internal/app/identity"
	"hpzbot/internal/pkg/logx"
)

// deadlineText renders how long a mission has left. Zero or negative days
// remaining collapse to "ends today".
func deadlineText(endDate, now time.Time) string {
	days := int(math.Ceil(endDate.Sub(now).Hours() / 24))
	if days > 0 {
		return fmt.Sprintf("%d hari lagi", days)
	}
	return "Berakhir hari ini"
}

func missionViews(missions []crew.Mission, now time.Time) []MissionView {
	views := []MissionView{}
	for _, m := range missions {
		views = append(views, MissionView{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Reward:      fmt.Sprintf("+%d poin", m.RewardPoints),
			Deadline:    deadlineText(m.EndDate, now),
			Status:      m.Status,
		})
	}
	return views
}

func (d *Dispatcher) handleMisi(ctx context.Context) *Result {
	view := fallbackMissions()

	snapshot, err := d.gateway.Missions(ctx)
	if err != nil {
		logx.Error(err, "failed to fetch missions, using fallback dataset")
	} else if len(snapshot.Weekly)+len(snapshot.Monthly) > 0 {
		now := d.now()
		view = MissionsView{
			Weekly:  missionViews(snapshot.Weekly, now),
			Monthly: missionViews(snapshot.Monthly, now),
		}
	}

	return &Result{
		Type:    "misi",
		Content: renderMisi(view),
		Data:    view,
	}
}

func (d *Dispatcher) handlePoinku(ctx context.Context, id *identity.Identity) *Result {
	view := fallbackPoints()

	snapshot, err := d.gateway.Points(ctx, id.ID)
	if err != nil {
		logx.Error(err, "failed to fetch user points, using fallback dataset", "user_id", id.ID.String())
	} else {
		activities := []ActivityView{}
		for _, a := range snapshot.Recent {
			activities = append(activities, ActivityView{
				Description: a.Description,
				Points:      a.Points,
				Date:        a.CreatedAt.UTC().Format("2006-01-02"),
			})
		}

		view = PointsView{
			Points:           snapshot.Points,
			Tier:             snapshot.TierName,
			PointsToNextTier: snapshot.PointsToNext,
			RecentActivities: activities,
		}
	}

	return &Result{
		Type:    "poinku",
		Content: renderPoinku(view),
		Data:    view,
	}
}

func tierInfo(t crew.Tier, includeMax bool) TierInfo {
	info := TierInfo{
		Name:      t.Name,
		MinPoints: t.MinPoints,
		Color:     t.Color,
		Benefits:  t.Benefits,
	}
	if info.Benefits == nil {
		info.Benefits = []string{}
	}
	if includeMax {
		info.MaxPoints = t.MaxPoints
	}
	return info
}

func (d *Dispatcher) handleTierku(ctx context.Context, id *identity.Identity) *Result {
	view := fallbackTier()

	snapshot, err := d.gateway.TierProgress(ctx, id.ID)
	if err != nil {
		logx.Error(err, "failed to fetch tier data, using fallback dataset", "user_id", id.ID.String())
	} else {
		view = TierView{
			Current:            tierInfo(snapshot.Current, true),
			CurrentPoints:      snapshot.CurrentPoints,
			PointsNeeded:       snapshot.PointsNeeded,
			ProgressPercentage: snapshot.Progress,
		}
		if snapshot.Next != nil {
			next := tierInfo(*snapshot.Next, false)
			view.Next = &next
		}
	}

	return &Result{
		Type:    "tierku",
		Content: renderTierku(view),
		Data:    view,
	}
}

func (d *Dispatcher) handleFaq() *Result {
	return &Result{
		Type:    "faq",
		Content: renderFaq(faqs),
		Data:    faqs,
	}
}

func (d *Dispatcher) handleUpgrade(ctx context.Context, id *identity.Identity) *Result {
	view := fallbackUpgrade()

	snapshot, err := d.gateway.Upgrade(ctx, id.ID)
	if err != nil {
		logx.Error(err, "failed to fetch upgrade info, using fallback dataset", "user_id", id.ID.String())
	} else {
		nextName := "Max Tier Reached"
		neededPoints := snapshot.CurrentPoints
		if snapshot.Next != nil {
			nextName = snapshot.Next.Name
			neededPoints = snapshot.Next.MinPoints
		}

		c := snapshot.Counters
		view = UpgradeView{
			CurrentTier:   snapshot.CurrentTier,
			NextTier:      nextName,
			CurrentPoints: snapshot.CurrentPoints,
			NeededPoints:  neededPoints,
			Requirements: RequirementsView{
				Content:    fmt.Sprintf("10 approved contents (current: %d)", c.ApprovedContent),
				Sales:      fmt.Sprintf("3 successful affiliate sales (current: %d)", c.AffiliateSales),
				Membership: fmt.Sprintf("90 days active membership (current: %d days)", c.MembershipDays),
				Mentoring:  fmt.Sprintf("Mentor new members (current: %d)", c.Referrals),
			},
		}
	}

	return &Result{
		Type:    "upgrade",
		Content: renderUpgrade(view),
		Data:    view,
	}
}

func (d *Dispatcher) handleHubungiAdmin(id *identity.Identity) *Result {
	view := AdminView{
		UserID:    id.ID.String(),
		UserEmail: id.Email,
	}

	return &Result{
		Type:    "hubungiadmin",
		Content: renderHubungiAdmin(view),
		Data:    view,
	}
}
