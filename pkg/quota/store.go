package quota

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/bidiq/bidiq/ent"
	"github.com/bidiq/bidiq/ent/monthlyquota"
	"github.com/bidiq/bidiq/ent/usersubscription"
	"github.com/bidiq/bidiq/pkg/database"
)

// EntStore backs the quota service with PostgreSQL. The increment path
// prefers the increment_monthly_quota stored procedure and degrades to a
// read-then-upsert when the procedure is unavailable.
type EntStore struct {
	db *database.Client
}

// NewEntStore wraps the database client.
func NewEntStore(db *database.Client) *EntStore {
	return &EntStore{db: db}
}

// Increment consumes one quota unit via the stored procedure; see the 0002
// migration for its semantics.
func (s *EntStore) Increment(ctx context.Context, userID, monthKey string, maxQuota int) (bool, int, error) {
	var max sql.NullInt64
	if maxQuota != Unlimited {
		max = sql.NullInt64{Int64: int64(maxQuota), Valid: true}
	}

	var allowed bool
	var newCount int
	err := s.db.DB().QueryRowContext(ctx,
		"SELECT allowed, new_count FROM increment_monthly_quota($1, $2, $3)",
		userID, monthKey, max,
	).Scan(&allowed, &newCount)
	if err == nil {
		return allowed, newCount, nil
	}

	slog.WarnContext(ctx, "Stored procedure increment failed, using upsert fallback",
		"user_id", userID, "error", err)
	return s.incrementFallback(ctx, userID, monthKey, maxQuota)
}

// incrementFallback is the plain-SQL degradation used when the procedure is
// missing or broken. The limit check rides on the UPDATE's predicate, so
// concurrent callers cannot push the counter past maxQuota.
func (s *EntStore) incrementFallback(ctx context.Context, userID, monthKey string, maxQuota int) (bool, int, error) {
	exists, err := s.db.MonthlyQuota.Query().
		Where(monthlyquota.UserID(userID), monthlyquota.MonthKey(monthKey)).
		Exist(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to read quota row: %w", err)
	}
	if !exists {
		err := s.db.MonthlyQuota.Create().
			SetUserID(userID).
			SetMonthKey(monthKey).
			SetSearchesCount(0).
			Exec(ctx)
		// A concurrent caller may have created the row first; the unique
		// index on (user_id, month_key) turns that into a constraint error.
		if err != nil && !ent.IsConstraintError(err) {
			return false, 0, fmt.Errorf("failed to create quota row: %w", err)
		}
	}

	upd := s.db.MonthlyQuota.Update().
		Where(monthlyquota.UserID(userID), monthlyquota.MonthKey(monthKey))
	if maxQuota != Unlimited {
		upd = upd.Where(monthlyquota.SearchesCountLT(maxQuota))
	}
	n, err := upd.AddSearchesCount(1).Save(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment quota row: %w", err)
	}

	count, err := s.CurrentCount(ctx, userID, monthKey)
	if err != nil {
		return false, 0, err
	}
	return n > 0, count, nil
}

// CurrentCount reads the month counter without modifying it.
func (s *EntStore) CurrentCount(ctx context.Context, userID, monthKey string) (int, error) {
	row, err := s.db.MonthlyQuota.Query().
		Where(monthlyquota.UserID(userID), monthlyquota.MonthKey(monthKey)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read quota count: %w", err)
	}
	return row.SearchesCount, nil
}

// Profile fetches the bypass/trial slice of the user profile.
func (s *EntStore) Profile(ctx context.Context, userID string) (*ProfileInfo, error) {
	p, err := s.db.Profile.Get(ctx, userID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return &ProfileInfo{
		IsAdmin:        p.IsAdmin,
		PlanType:       p.PlanType,
		TrialExpiresAt: p.TrialExpiresAt,
	}, nil
}

// Subscription fetches the active billing subscription.
func (s *EntStore) Subscription(ctx context.Context, userID string) (*SubscriptionInfo, error) {
	sub, err := s.db.UserSubscription.Query().
		Where(usersubscription.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read subscription: %w", err)
	}
	return &SubscriptionInfo{
		PlanID: sub.PlanID,
		Status: string(sub.Status),
	}, nil
}
