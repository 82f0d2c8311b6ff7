package crew

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hpzbot/internal/app/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// QueryTimeout bounds every gateway query. A timed-out fetch is treated as
// a failure by the caller and resolved through its fallback dataset.
const QueryTimeout = 5 * time.Second

// Store reads crew snapshots from Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps the connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// defaultTier is substituted when a points row has no tier assigned yet.
func defaultTier() Tier {
	maxPoints := 499
	return Tier{
		Name:      "Rookie Rider",
		MinPoints: 0,
		MaxPoints: &maxPoints,
		Color:     "🏍️",
		Benefits: []string{
			"Access to Discord community",
			"Basic missions",
			"Monthly newsletter",
		},
	}
}

// accountID resolves the provider auth user id to the crew account id.
func (s *Store) accountID(ctx context.Context, authUserID uuid.UUID) (pgtype.UUID, error) {
	var authUUID pgtype.UUID
	if err := authUUID.Scan(authUserID.String()); err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid auth user id: %w", err)
	}

	var accountID pgtype.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM user_accounts WHERE auth_user_id = $1`,
		authUUID,
	).Scan(&accountID)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("user account not found: %w", err)
	}

	return accountID, nil
}

// Missions returns all active missions grouped by cadence, ordered by end
// date ascending.
func (s *Store) Missions(ctx context.Context) (MissionsSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, reward_points, mission_type, status, end_date
		 FROM chatbot_missions
		 WHERE status = 'active'
		 ORDER BY end_date ASC`,
	)
	if err != nil {
		return MissionsSnapshot{}, fmt.Errorf("fetching missions: %w", err)
	}
	defer rows.Close()

	var snapshot MissionsSnapshot
	for rows.Next() {
		var m Mission
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.RewardPoints, &m.Type, &m.Status, &m.EndDate); err != nil {
			return MissionsSnapshot{}, fmt.Errorf("scanning mission: %w", err)
		}

		switch m.Type {
		case "weekly":
			snapshot.Weekly = append(snapshot.Weekly, m)
		case "monthly":
			snapshot.Monthly = append(snapshot.Monthly, m)
		}
	}
	if err := rows.Err(); err != nil {
		return MissionsSnapshot{}, fmt.Errorf("reading missions: %w", err)
	}

	return snapshot, nil
}

// pointsRow fetches (or lazily creates) the caller's points row together
// with the joined tier name.
func (s *Store) pointsRow(ctx context.Context, accountID pgtype.UUID) (int, *string, error) {
	var (
		totalPoints int
		tierName    *string
	)

	err := s.pool.QueryRow(ctx,
		`SELECT up.total_points, t.name
		 FROM user_points up
		 LEFT JOIN tiers t ON t.id = up.tier_id
		 WHERE up.user_id = $1`,
		accountID,
	).Scan(&totalPoints, &tierName)

	if db.IsNoRows(err) {
		// First interaction: initialize the caller with a zero row.
		err = s.pool.QueryRow(ctx,
			`INSERT INTO user_points (user_id) VALUES ($1) RETURNING total_points`,
			accountID,
		).Scan(&totalPoints)
		tierName = nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("fetching user points: %w", err)
	}

	return totalPoints, tierName, nil
}

// nextTier returns the lowest tier whose threshold exceeds points, or nil
// at the top of the ladder.
func (s *Store) nextTier(ctx context.Context, points int) (*Tier, error) {
	var (
		t           Tier
		rawBenefits []byte
	)

	err := s.pool.QueryRow(ctx,
		`SELECT name, min_points, max_points, color, benefits
		 FROM tiers
		 WHERE min_points > $1
		 ORDER BY min_points ASC
		 LIMIT 1`,
		points,
	).Scan(&t.Name, &t.MinPoints, &t.MaxPoints, &t.Color, &rawBenefits)

	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching next tier: %w", err)
	}

	t.Benefits = decodeBenefits(rawBenefits)
	return &t, nil
}

// Points returns the /poinku projection: total, tier name, gap to the next
// threshold, and the three most recent activities.
func (s *Store) Points(ctx context.Context, authUserID uuid.UUID) (PointsSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	accountID, err := s.accountID(ctx, authUserID)
	if err != nil {
		return PointsSnapshot{}, err
	}

	totalPoints, tierName, err := s.pointsRow(ctx, accountID)
	if err != nil {
		return PointsSnapshot{}, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT description, points, created_at
		 FROM chatbot_activities
		 WHERE user_account_id = $1
		 ORDER BY created_at DESC
		 LIMIT 3`,
		accountID,
	)
	if err != nil {
		return PointsSnapshot{}, fmt.Errorf("fetching activities: %w", err)
	}
	defer rows.Close()

	var recent []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Description, &a.Points, &a.CreatedAt); err != nil {
			return PointsSnapshot{}, fmt.Errorf("scanning activity: %w", err)
		}
		recent = append(recent, a)
	}
	if err := rows.Err(); err != nil {
		return PointsSnapshot{}, fmt.Errorf("reading activities: %w", err)
	}

	next, err := s.nextTier(ctx, totalPoints)
	if err != nil {
		return PointsSnapshot{}, err
	}

	name := "Rookie Rider"
	if tierName != nil {
		name = *tierName
	}

	return PointsSnapshot{
		Points:       totalPoints,
		TierName:     name,
		PointsToNext: PointsToNext(next, totalPoints),
		Recent:       recent,
	}, nil
}

// TierProgress returns the /tierku projection: the caller's full current
// tier, the next tier (nil at the top), and the clamped progress percentage.
func (s *Store) TierProgress(ctx context.Context, authUserID uuid.UUID) (TierSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	accountID, err := s.accountID(ctx, authUserID)
	if err != nil {
		return TierSnapshot{}, err
	}

	var (
		totalPoints int
		name        *string
		minPoints   *int
		maxPoints   *int
		color       *string
		rawBenefits []byte
	)

	err = s.pool.QueryRow(ctx,
		`SELECT up.total_points, t.name, t.min_points, t.max_points, t.color, t.benefits
		 FROM user_points up
		 LEFT JOIN tiers t ON t.id = up.tier_id
		 WHERE up.user_id = $1`,
		accountID,
	).Scan(&totalPoints, &name, &minPoints, &maxPoints, &color, &rawBenefits)

	if db.IsNoRows(err) {
		err = s.pool.QueryRow(ctx,
			`INSERT INTO user_points (user_id) VALUES ($1) RETURNING total_points`,
			accountID,
		).Scan(&totalPoints)
	}
	if err != nil {
		return TierSnapshot{}, fmt.Errorf("fetching user tier: %w", err)
	}

	current := defaultTier()
	if name != nil {
		current = Tier{
			Name:      *name,
			Color:     "🏍️",
			MaxPoints: maxPoints,
			Benefits:  decodeBenefits(rawBenefits),
		}
		if minPoints != nil {
			current.MinPoints = *minPoints
		}
		if color != nil {
			current.Color = *color
		}
	}

	next, err := s.nextTier(ctx, totalPoints)
	if err != nil {
		return TierSnapshot{}, err
	}

	return TierSnapshot{
		Current:       current,
		Next:          next,
		CurrentPoints: totalPoints,
		PointsNeeded:  PointsToNext(next, totalPoints),
		Progress:      Progress(current, next, totalPoints),
	}, nil
}

// Upgrade returns the /upgrade projection. The four requirement counters
// are independent and fetched concurrently; any failure fails the whole
// snapshot so the handler falls back to its static default.
func (s *Store) Upgrade(ctx context.Context, authUserID uuid.UUID) (UpgradeSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	accountID, err := s.accountID(ctx, authUserID)
	if err != nil {
		return UpgradeSnapshot{}, err
	}

	totalPoints, tierName, err := s.pointsRow(ctx, accountID)
	if err != nil {
		return UpgradeSnapshot{}, err
	}

	next, err := s.nextTier(ctx, totalPoints)
	if err != nil {
		return UpgradeSnapshot{}, err
	}

	var counters UpgradeCounters
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.pool.QueryRow(gctx,
			`SELECT count(*) FROM ugc_content
			 WHERE user_account_id = $1 AND status = 'approved_for_repost'`,
			accountID,
		).Scan(&counters.ApprovedContent)
	})

	g.Go(func() error {
		return s.pool.QueryRow(gctx,
			`SELECT count(*) FROM affiliate_sales
			 WHERE user_account_id = $1 AND status = 'approved'`,
			accountID,
		).Scan(&counters.AffiliateSales)
	})

	g.Go(func() error {
		var createdAt time.Time
		if err := s.pool.QueryRow(gctx,
			`SELECT created_at FROM user_accounts WHERE id = $1`,
			accountID,
		).Scan(&createdAt); err != nil {
			return err
		}
		counters.MembershipDays = int(time.Since(createdAt).Hours() / 24)
		return nil
	})

	g.Go(func() error {
		return s.pool.QueryRow(gctx,
			`SELECT count(*) FROM user_accounts WHERE referred_by = $1`,
			accountID,
		).Scan(&counters.Referrals)
	})

	if err := g.Wait(); err != nil {
		return UpgradeSnapshot{}, fmt.Errorf("fetching upgrade counters: %w", err)
	}

	name := "Rookie Rider"
	if tierName != nil {
		name = *tierName
	}

	return UpgradeSnapshot{
		CurrentTier:   name,
		Next:          next,
		CurrentPoints: totalPoints,
		Counters:      counters,
	}, nil
}

// decodeBenefits parses the jsonb benefits column, tolerating null.
func decodeBenefits(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var benefits []string
	if err := json.Unmarshal(raw, &benefits); err != nil {
		return []string{}
	}
	return benefits
}
