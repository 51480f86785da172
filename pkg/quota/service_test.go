package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	counts       map[string]int
	profile      *ProfileInfo
	profileErr   error
	profileCalls int
	sub          *SubscriptionInfo
	subErr       error
	countErr     error
	incrementErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: map[string]int{}}
}

func (f *fakeStore) Increment(_ context.Context, userID, monthKey string, maxQuota int) (bool, int, error) {
	if f.incrementErr != nil {
		return false, 0, f.incrementErr
	}
	key := userID + ":" + monthKey
	if maxQuota != Unlimited && f.counts[key] >= maxQuota {
		return false, f.counts[key], nil
	}
	f.counts[key]++
	return true, f.counts[key], nil
}

func (f *fakeStore) CurrentCount(_ context.Context, userID, monthKey string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[userID+":"+monthKey], nil
}

func (f *fakeStore) Profile(_ context.Context, _ string) (*ProfileInfo, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if f.profile == nil {
		return nil, ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeStore) Subscription(_ context.Context, _ string) (*SubscriptionInfo, error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	if f.sub == nil {
		return nil, ErrNotFound
	}
	return f.sub, nil
}

func newTestService(store Store) *Service {
	svc := New(store, "")
	svc.retryWait = time.Millisecond
	return svc
}

func TestMonthKey(t *testing.T) {
	// 23:30 in UTC-3 is already the next day in UTC, but not a new month.
	loc := time.FixedZone("BRT", -3*3600)
	ts := time.Date(2026, 8, 31, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-09", MonthKey(ts))
	assert.Equal(t, "2026-08", MonthKey(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)))
}

func TestResetDate(t *testing.T) {
	ts := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), ResetDate(ts))

	// December rolls into January of the next year.
	dec := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), ResetDate(dec))
}

func TestCheck_DefaultsToFreePlan(t *testing.T) {
	svc := newTestService(newFakeStore())

	info := svc.Check(context.Background(), "user-1")
	assert.True(t, info.Allowed)
	assert.Equal(t, PlanFree, info.PlanID)
	assert.Equal(t, 10, info.Capabilities.MaxRequestsPerMonth)
	assert.Equal(t, 10, info.QuotaRemaining)
	assert.False(t, info.Capabilities.AllowExcel)
}

func TestCheck_SubscribedPlan(t *testing.T) {
	store := newFakeStore()
	store.sub = &SubscriptionInfo{PlanID: PlanPro, Status: "active"}
	svc := newTestService(store)

	info := svc.Check(context.Background(), "user-1")
	assert.True(t, info.Allowed)
	assert.Equal(t, PlanPro, info.PlanID)
	assert.True(t, info.Capabilities.AllowExcel)
	assert.Equal(t, 100, info.QuotaRemaining)
}

func TestCheck_UnknownPlanFallsBackToFree(t *testing.T) {
	store := newFakeStore()
	store.sub = &SubscriptionInfo{PlanID: "LEGACY_GOLD", Status: "active"}
	svc := newTestService(store)

	info := svc.Check(context.Background(), "user-1")
	assert.Equal(t, PlanFree, info.PlanID)
}

func TestCheck_TrialExpired(t *testing.T) {
	expired := time.Now().Add(-24 * time.Hour)
	store := newFakeStore()
	store.profile = &ProfileInfo{TrialExpiresAt: &expired}
	svc := newTestService(store)

	info := svc.Check(context.Background(), "user-1")
	assert.False(t, info.Allowed)
	assert.Equal(t, "Trial expirado", info.ErrorMessage)
}

func TestCheck_TrialExpiryIgnoredForPaidPlan(t *testing.T) {
	expired := time.Now().Add(-24 * time.Hour)
	store := newFakeStore()
	store.profile = &ProfileInfo{TrialExpiresAt: &expired}
	store.sub = &SubscriptionInfo{PlanID: PlanPro, Status: "active"}
	svc := newTestService(store)

	info := svc.Check(context.Background(), "user-1")
	assert.True(t, info.Allowed)
}

func TestCheck_QuotaExhausted(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	key := "user-1:" + MonthKey(time.Now())
	store.counts[key] = 10

	info := svc.Check(context.Background(), "user-1")
	assert.False(t, info.Allowed)
	assert.Equal(t, 10, info.QuotaUsed)
	assert.Equal(t, 0, info.QuotaRemaining)
}

func TestCheck_FailsOpenOnStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.subErr = errors.New("connection refused")
	store.countErr = errors.New("connection refused")
	svc := newTestService(store)

	info := svc.Check(context.Background(), "user-1")
	assert.True(t, info.Allowed, "store outage must not lock users out")
	assert.Equal(t, PlanFree, info.PlanID)
	assert.NotEmpty(t, info.ErrorMessage)
}

func TestCheck_AdminBypassUnlimited(t *testing.T) {
	store := newFakeStore()
	svc := New(store, "Admin-1, other-admin")
	svc.retryWait = time.Millisecond

	info := svc.Check(context.Background(), "ADMIN-1")
	assert.True(t, info.Allowed)
	assert.Equal(t, Unlimited, info.QuotaRemaining)
	assert.Equal(t, PlanMaster, info.PlanID)
}

func TestIsExempt(t *testing.T) {
	t.Run("env set is case-insensitive", func(t *testing.T) {
		svc := newTestService(newFakeStore())
		svc.adminIDs = map[string]struct{}{"abc-123": {}}
		assert.True(t, svc.IsExempt(context.Background(), "ABC-123"))
	})

	t.Run("profile is_admin", func(t *testing.T) {
		store := newFakeStore()
		store.profile = &ProfileInfo{IsAdmin: true}
		svc := newTestService(store)
		assert.True(t, svc.IsExempt(context.Background(), "user-1"))
	})

	t.Run("plan_type master", func(t *testing.T) {
		store := newFakeStore()
		store.profile = &ProfileInfo{PlanType: "master"}
		svc := newTestService(store)
		assert.True(t, svc.IsExempt(context.Background(), "user-1"))
	})

	t.Run("transient error retried once then denied", func(t *testing.T) {
		store := newFakeStore()
		store.profileErr = errors.New("timeout")
		svc := newTestService(store)
		assert.False(t, svc.IsExempt(context.Background(), "user-1"))
		assert.Equal(t, 2, store.profileCalls)
	})

	t.Run("missing profile not retried", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store)
		assert.False(t, svc.IsExempt(context.Background(), "user-1"))
		assert.Equal(t, 1, store.profileCalls)
	})
}

func TestCheckAndIncrement(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	allowed, count, remaining, err := svc.CheckAndIncrement(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, remaining)

	allowed, count, remaining, err = svc.CheckAndIncrement(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, remaining)

	allowed, _, _, err = svc.CheckAndIncrement(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.False(t, allowed, "third call exceeds the limit of 2")
}

func TestCheckAndIncrement_Unlimited(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	for i := 0; i < 5; i++ {
		allowed, _, remaining, err := svc.CheckAndIncrement(context.Background(), "user-1", Unlimited)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, Unlimited, remaining)
	}
}

func TestCheckAndIncrement_StoreError(t *testing.T) {
	store := newFakeStore()
	store.incrementErr = errors.New("connection refused")
	svc := newTestService(store)

	allowed, _, _, err := svc.CheckAndIncrement(context.Background(), "user-1", 10)
	require.Error(t, err)
	assert.False(t, allowed)
}
