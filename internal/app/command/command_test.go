package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hpzbot/internal/app/crew"
	"hpzbot/internal/app/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway lets each test choose between live snapshots and injected
// fetch failures per data source.
type fakeGateway struct {
	missions    crew.MissionsSnapshot
	missionsErr error
	points      crew.PointsSnapshot
	pointsErr   error
	tier        crew.TierSnapshot
	tierErr     error
	upgrade     crew.UpgradeSnapshot
	upgradeErr  error
}

func (f *fakeGateway) Missions(ctx context.Context) (crew.MissionsSnapshot, error) {
	return f.missions, f.missionsErr
}

func (f *fakeGateway) Points(ctx context.Context, authUserID uuid.UUID) (crew.PointsSnapshot, error) {
	return f.points, f.pointsErr
}

func (f *fakeGateway) TierProgress(ctx context.Context, authUserID uuid.UUID) (crew.TierSnapshot, error) {
	return f.tier, f.tierErr
}

func (f *fakeGateway) Upgrade(ctx context.Context, authUserID uuid.UUID) (crew.UpgradeSnapshot, error) {
	return f.upgrade, f.upgradeErr
}

func testIdentity() *identity.Identity {
	return &identity.Identity{
		ID:    uuid.MustParse("6f1b0c2e-8a4d-4f3a-9d5b-1c2e3f4a5b6c"),
		Email: "rider@hpztv.com",
	}
}

func newTestDispatcher(gateway DataGateway, now time.Time) *Dispatcher {
	d := NewDispatcher(gateway)
	d.now = func() time.Time { return now }
	return d
}

func TestIsCommand(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"/misi", true},
		{"  /MISI  ", true},
		{"/poinku please", true},
		{"/tierku", true},
		{"/faq", true},
		{"/upgrade", true},
		{"/hubungiadmin", true},
		{"/misikita", false},
		{"/unknown", false},
		{"misi", false},
		{"halo bro", false},
		{"", false},
		{"   ", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsCommand(tc.message), "message=%q", tc.message)
	}
}

func TestExtract(t *testing.T) {
	assert.Equal(t, Token("/misi"), Extract("  /Misi sekarang "))
	assert.Equal(t, Token(""), Extract("   "))
}

func TestExecuteUnknownToken(t *testing.T) {
	d := newTestDispatcher(&fakeGateway{}, time.Now())

	result, err := d.Execute(context.Background(), Token("/unknown"), testIdentity())
	require.ErrorIs(t, err, ErrUnknownToken)
	assert.Nil(t, result)
}

func TestExecuteMisiLive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gateway := &fakeGateway{
		missions: crew.MissionsSnapshot{
			Weekly: []crew.Mission{
				{
					ID:           7,
					Title:        "Sunday Ride Recap",
					Description:  "Share momen riding kamu",
					RewardPoints: 30,
					EndDate:      now.Add(49 * time.Hour),
					Status:       "active",
				},
			},
			Monthly: []crew.Mission{
				{
					ID:           8,
					Title:        "Garage Tour",
					Description:  "Video tour garasi kamu",
					RewardPoints: 100,
					EndDate:      now.Add(-2 * time.Hour),
					Status:       "active",
				},
			},
		},
	}

	d := newTestDispatcher(gateway, now)

	result, err := d.Execute(context.Background(), TokenMisi, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "misi", result.Type)
	assert.Contains(t, result.Content, "# 🎯 MISI AKTIF HPZ CREW")
	assert.Contains(t, result.Content, "### 1. Sunday Ride Recap")
	assert.Contains(t, result.Content, "- 🎁 **Reward:** +30 poin")
	assert.Contains(t, result.Content, "3 hari lagi")
	assert.Contains(t, result.Content, "Berakhir hari ini")

	view, ok := result.Data.(MissionsView)
	require.True(t, ok)
	require.Len(t, view.Weekly, 1)
	assert.Equal(t, "+30 poin", view.Weekly[0].Reward)
}

func TestExecuteMisiFallbackOnError(t *testing.T) {
	gateway := &fakeGateway{missionsErr: errors.New("connection refused")}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenMisi, testIdentity())
	require.NoError(t, err)

	view, ok := result.Data.(MissionsView)
	require.True(t, ok)
	assert.Equal(t, fallbackMissions(), view)
	assert.Contains(t, result.Content, "Motor Pride of The Week")
}

func TestExecuteMisiFallbackOnEmpty(t *testing.T) {
	d := newTestDispatcher(&fakeGateway{}, time.Now())

	result, err := d.Execute(context.Background(), TokenMisi, testIdentity())
	require.NoError(t, err)

	view, ok := result.Data.(MissionsView)
	require.True(t, ok)
	assert.Equal(t, fallbackMissions(), view)
}

func TestExecutePoinkuLive(t *testing.T) {
	gateway := &fakeGateway{
		points: crew.PointsSnapshot{
			Points:       1250,
			TierName:     "Pro Racer",
			PointsToNext: 250,
			Recent: []crew.Activity{
				{
					Description: "Upload konten #RideWithPride",
					Points:      50,
					CreatedAt:   time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenPoinku, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "poinku", result.Type)
	assert.Contains(t, result.Content, "- 💎 **Total Poin:** 1,250")
	assert.Contains(t, result.Content, "- 🏆 **Tier Saat Ini:** Pro Racer")
	assert.Contains(t, result.Content, "- 📈 **Poin ke Tier Berikutnya:** 250 poin lagi")
	assert.Contains(t, result.Content, "1. **+50 poin** - Upload konten #RideWithPride *(2025-05-30)*")
}

func TestExecutePoinkuFallbackOnError(t *testing.T) {
	gateway := &fakeGateway{pointsErr: errors.New("timeout")}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenPoinku, testIdentity())
	require.NoError(t, err)

	view, ok := result.Data.(PointsView)
	require.True(t, ok)
	assert.Equal(t, fallbackPoints(), view)
	assert.Contains(t, result.Content, "- 🏆 **Tier Saat Ini:** Rookie Rider")
}

func TestExecuteTierkuLive(t *testing.T) {
	proMax := 1499
	gateway := &fakeGateway{
		tier: crew.TierSnapshot{
			Current: crew.Tier{
				Name:      "Pro Racer",
				MinPoints: 500,
				MaxPoints: &proMax,
				Color:     "🏍️",
				Benefits:  []string{"Bonus points multiplier (1.2x)"},
			},
			Next: &crew.Tier{
				Name:      "HPZ Legend",
				MinPoints: 1500,
				Color:     "🏆",
				Benefits:  []string{"VIP event access", "Revenue sharing", "Custom merchandise", "Direct sponsor line"},
			},
			CurrentPoints: 900,
			PointsNeeded:  600,
			Progress:      40,
		},
	}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenTierku, testIdentity())
	require.NoError(t, err)
	assert.Contains(t, result.Content, "# 🏍️ TIER KAMU: Pro Racer")
	assert.Contains(t, result.Content, "- 📊 **Progress ke HPZ Legend:** 40.0%")
	assert.Contains(t, result.Content, "- 🎯 **Butuh:** 600 poin lagi")
	// Only the first three upcoming benefits are listed, plus a counter.
	assert.Contains(t, result.Content, "3. Custom merchandise")
	assert.NotContains(t, result.Content, "Direct sponsor line")
	assert.Contains(t, result.Content, "... dan **1 benefit lainnya!**")
}

func TestExecuteTierkuTopTier(t *testing.T) {
	gateway := &fakeGateway{
		tier: crew.TierSnapshot{
			Current: crew.Tier{
				Name:      "HPZ Legend",
				MinPoints: 1500,
				Color:     "🏆",
				Benefits:  []string{"VIP event access"},
			},
			Next:          nil,
			CurrentPoints: 2100,
			PointsNeeded:  0,
			Progress:      100,
		},
	}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenTierku, testIdentity())
	require.NoError(t, err)
	assert.Contains(t, result.Content, "- 📊 **Progress:** 100.0%")
	assert.Contains(t, result.Content, "## 🎉 Kamu Sudah di Tier Tertinggi!")

	view, ok := result.Data.(TierView)
	require.True(t, ok)
	assert.Nil(t, view.Next)
}

func TestExecuteTierkuFallbackOnError(t *testing.T) {
	gateway := &fakeGateway{tierErr: errors.New("no rows")}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenTierku, testIdentity())
	require.NoError(t, err)

	view, ok := result.Data.(TierView)
	require.True(t, ok)
	assert.Equal(t, fallbackTier(), view)
}

func TestExecuteFaq(t *testing.T) {
	d := newTestDispatcher(&fakeGateway{}, time.Now())

	result, err := d.Execute(context.Background(), TokenFaq, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "faq", result.Type)
	assert.Contains(t, result.Content, "# ❓ FAQ (Pertanyaan Dasar)")
	assert.Contains(t, result.Content, "1\ufe0f\nQ: Bagaimana cara bergabung?")
	// Single-line answers stay inline; multi-line answers start on their
	// own line.
	assert.Contains(t, result.Content, "A: Ya, 100% gratis")
	assert.Contains(t, result.Content, "A:\n- Upload konten dengan hashtag resmi #RideWithPride.")
	assert.False(t, strings.HasSuffix(result.Content, "\n\n"))

	entries, ok := result.Data.([]FAQ)
	require.True(t, ok)
	assert.Len(t, entries, 8)
}

func TestExecuteUpgradeLive(t *testing.T) {
	gateway := &fakeGateway{
		upgrade: crew.UpgradeSnapshot{
			CurrentTier: "Pro Racer",
			Next: &crew.Tier{
				Name:      "HPZ Legend",
				MinPoints: 1500,
			},
			CurrentPoints: 900,
			Counters: crew.UpgradeCounters{
				ApprovedContent: 7,
				AffiliateSales:  1,
				MembershipDays:  45,
				Referrals:       2,
			},
		},
	}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenUpgrade, testIdentity())
	require.NoError(t, err)
	assert.Contains(t, result.Content, "- 📍 **Posisi Kamu:** Pro Racer")
	assert.Contains(t, result.Content, "- 🎯 **Target:** HPZ Legend")
	assert.Contains(t, result.Content, "- 📈 **Kekurangan Poin:** 600 poin")
	assert.Contains(t, result.Content, "- 📸 10 approved contents (current: 7)")
	assert.Contains(t, result.Content, "- 📅 90 days active membership (current: 45 days)")
}

func TestExecuteUpgradeTopTier(t *testing.T) {
	gateway := &fakeGateway{
		upgrade: crew.UpgradeSnapshot{
			CurrentTier:   "HPZ Legend",
			Next:          nil,
			CurrentPoints: 2100,
		},
	}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenUpgrade, testIdentity())
	require.NoError(t, err)

	view, ok := result.Data.(UpgradeView)
	require.True(t, ok)
	assert.Equal(t, "Max Tier Reached", view.NextTier)
	assert.Equal(t, view.CurrentPoints, view.NeededPoints)
	assert.Contains(t, result.Content, "- 📈 **Kekurangan Poin:** 0 poin")
}

func TestExecuteUpgradeFallbackOnError(t *testing.T) {
	gateway := &fakeGateway{upgradeErr: errors.New("boom")}
	d := newTestDispatcher(gateway, time.Now())

	result, err := d.Execute(context.Background(), TokenUpgrade, testIdentity())
	require.NoError(t, err)

	view, ok := result.Data.(UpgradeView)
	require.True(t, ok)
	assert.Equal(t, fallbackUpgrade(), view)
}

func TestExecuteHubungiAdmin(t *testing.T) {
	d := newTestDispatcher(&fakeGateway{}, time.Now())
	id := testIdentity()

	result, err := d.Execute(context.Background(), TokenHubungiAdmin, id)
	require.NoError(t, err)
	assert.Equal(t, "hubungiadmin", result.Type)
	assert.Contains(t, result.Content, "# 📞 HUBUNGI ADMIN HPZ CREW")

	view, ok := result.Data.(AdminView)
	require.True(t, ok)
	assert.Equal(t, id.ID.String(), view.UserID)
	assert.Equal(t, id.Email, view.UserEmail)
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "1,000", groupDigits(1000))
	assert.Equal(t, "1,234,567", groupDigits(1234567))
	assert.Equal(t, "-12,345", groupDigits(-12345))
}

func TestDeadlineText(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 hari lagi", deadlineText(now.Add(2*time.Hour), now))
	assert.Equal(t, "7 hari lagi", deadlineText(now.Add(7*24*time.Hour), now))
	assert.Equal(t, "Berakhir hari ini", deadlineText(now, now))
	assert.Equal(t, "Berakhir hari ini", deadlineText(now.Add(-3*time.Hour), now))
}
