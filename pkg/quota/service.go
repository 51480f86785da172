// Package quota enforces the per-user monthly search quota and the plan
// capability table.
package quota

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrNotFound is returned by Store implementations when a record does not
// exist. It is a normal outcome for users without a subscription or profile.
var ErrNotFound = errors.New("record not found")

// profileRetryWait is the pause before the single automatic retry of the
// admin profile lookup on a transient store error.
const profileRetryWait = 300 * time.Millisecond

// ProfileInfo is the slice of the user profile the quota service consults.
type ProfileInfo struct {
	IsAdmin        bool
	PlanType       string
	TrialExpiresAt *time.Time
}

// SubscriptionInfo is the slice of the billing subscription the quota
// service consults.
type SubscriptionInfo struct {
	PlanID string
	Status string
}

// Store is the narrow persistence surface the quota service needs.
type Store interface {
	// Increment atomically bumps the month counter. maxQuota == Unlimited
	// increments unconditionally; otherwise a counter already at or above
	// maxQuota returns allowed=false without incrementing.
	Increment(ctx context.Context, userID, monthKey string, maxQuota int) (allowed bool, newCount int, err error)
	CurrentCount(ctx context.Context, userID, monthKey string) (int, error)
	Profile(ctx context.Context, userID string) (*ProfileInfo, error)
	Subscription(ctx context.Context, userID string) (*SubscriptionInfo, error)
}

// Info is the quota snapshot returned to callers and serialized into API
// responses.
type Info struct {
	Allowed        bool         `json:"allowed"`
	PlanID         string       `json:"plan_id"`
	PlanName       string       `json:"plan_name"`
	Capabilities   Capabilities `json:"capabilities"`
	QuotaUsed      int          `json:"quota_used"`
	QuotaRemaining int          `json:"quota_remaining"`
	QuotaResetDate time.Time    `json:"quota_reset_date"`
	TrialExpiresAt *time.Time   `json:"trial_expires_at,omitempty"`
	ErrorMessage   string       `json:"error_message,omitempty"`
}

// Service answers quota questions for the pipeline and the API layer.
type Service struct {
	store     Store
	adminIDs  map[string]struct{}
	now       func() time.Time
	retryWait time.Duration
}

// New creates the quota service. adminCSV is the ADMIN_USER_IDS environment
// value: comma-separated user ids matched case-insensitively.
func New(store Store, adminCSV string) *Service {
	admins := make(map[string]struct{})
	for _, id := range strings.Split(adminCSV, ",") {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			admins[id] = struct{}{}
		}
	}
	return &Service{
		store:     store,
		adminIDs:  admins,
		now:       time.Now,
		retryWait: profileRetryWait,
	}
}

// MonthKey formats the quota bucket for a point in time: YYYY-MM in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// ResetDate returns when the quota bucket containing t rolls over: the first
// of the next month, 00:00 UTC.
func ResetDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// CheckAndIncrement atomically consumes one quota unit for the current
// month. maxQuota == Unlimited increments unconditionally.
func (s *Service) CheckAndIncrement(ctx context.Context, userID string, maxQuota int) (allowed bool, newCount, remaining int, err error) {
	monthKey := MonthKey(s.now())
	allowed, newCount, err = s.store.Increment(ctx, userID, monthKey, maxQuota)
	if err != nil {
		return false, 0, 0, fmt.Errorf("failed to increment quota for %q: %w", userID, err)
	}
	if maxQuota == Unlimited {
		return allowed, newCount, Unlimited, nil
	}
	remaining = maxQuota - newCount
	if remaining < 0 {
		remaining = 0
	}
	return allowed, newCount, remaining, nil
}

// Check assembles the quota snapshot for a user without consuming quota.
// Persistence errors fail open on the FREE plan so a back-office outage
// never locks users out.
func (s *Service) Check(ctx context.Context, userID string) *Info {
	now := s.now()

	if s.IsExempt(ctx, userID) {
		plan := Lookup(PlanMaster)
		return &Info{
			Allowed:        true,
			PlanID:         plan.ID,
			PlanName:       plan.Name,
			Capabilities:   plan.Capabilities,
			QuotaRemaining: Unlimited,
			QuotaResetDate: ResetDate(now),
		}
	}

	plan := Lookup(PlanFree)
	var storeErr string

	sub, err := s.store.Subscription(ctx, userID)
	switch {
	case err == nil:
		plan = Lookup(sub.PlanID)
	case errors.Is(err, ErrNotFound):
		// No subscription: FREE plan.
	default:
		slog.WarnContext(ctx, "Quota subscription lookup failed, assuming FREE plan",
			"user_id", userID, "error", err)
		storeErr = "verificação de plano indisponível"
	}

	var trialExpires *time.Time
	if profile, err := s.store.Profile(ctx, userID); err == nil {
		trialExpires = profile.TrialExpiresAt
	} else if !errors.Is(err, ErrNotFound) {
		slog.WarnContext(ctx, "Quota profile lookup failed", "user_id", userID, "error", err)
	}

	info := &Info{
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		Capabilities:   plan.Capabilities,
		QuotaResetDate: ResetDate(now),
		TrialExpiresAt: trialExpires,
		ErrorMessage:   storeErr,
	}

	if plan.ID == PlanFree && trialExpires != nil && trialExpires.Before(now) {
		info.Allowed = false
		info.ErrorMessage = "Trial expirado"
		return info
	}

	used, err := s.store.CurrentCount(ctx, userID, MonthKey(now))
	if err != nil && !errors.Is(err, ErrNotFound) {
		slog.WarnContext(ctx, "Quota count lookup failed, failing open",
			"user_id", userID, "error", err)
		info.Allowed = true
		info.QuotaRemaining = plan.Capabilities.MaxRequestsPerMonth
		if info.ErrorMessage == "" {
			info.ErrorMessage = "contagem de quota indisponível"
		}
		return info
	}

	info.QuotaUsed = used
	if plan.Capabilities.MaxRequestsPerMonth == Unlimited {
		info.Allowed = true
		info.QuotaRemaining = Unlimited
		return info
	}

	info.QuotaRemaining = plan.Capabilities.MaxRequestsPerMonth - used
	if info.QuotaRemaining < 0 {
		info.QuotaRemaining = 0
	}
	info.Allowed = info.QuotaRemaining > 0
	return info
}

// IsExempt reports whether the user bypasses quota and rate limits: listed
// in ADMIN_USER_IDS, or profile is_admin, or plan_type master. The env set
// is the fast path; the profile lookup retries once on transient error.
func (s *Service) IsExempt(ctx context.Context, userID string) bool {
	if _, ok := s.adminIDs[strings.ToLower(userID)]; ok {
		return true
	}

	profile, err := s.store.Profile(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.retryWait):
		}
		profile, err = s.store.Profile(ctx, userID)
	}
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.WarnContext(ctx, "Admin profile check failed, denying bypass",
				"user_id", userID, "error", err)
		}
		return false
	}
	return profile.IsAdmin || strings.EqualFold(profile.PlanType, PlanMaster)
}
