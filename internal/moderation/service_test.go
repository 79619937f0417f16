package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/redis"
)

type fakeKycCounter struct {
	count int64
	err   error
	calls int
}

func (f *fakeKycCounter) CountUnderReview(context.Context) (int64, error) {
	f.calls++
	return f.count, f.err
}

type fakeVehicleCounter struct {
	count int64
	err   error
	calls int
}

func (f *fakeVehicleCounter) CountPendingModeration(context.Context) (int64, error) {
	f.calls++
	return f.count, f.err
}

type fakeCache struct {
	store   map[string]string
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	setHits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.store[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setHits++
	switch v := value.(type) {
	case []byte:
		f.store[key] = string(v)
	case string:
		f.store[key] = v
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCache) CacheKey(parts ...string) string {
	return "an:cache:" + strings.Join(parts, ":")
}

func newCountsService(t *testing.T, kyc *fakeKycCounter, vehicles *fakeVehicleCounter, cache *fakeCache, ttl time.Duration) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		KycRepo:     kyc,
		VehicleRepo: vehicles,
		Cache:       cache,
		Logger:      logger.New(logger.Options{ServiceName: "moderation-test"}),
		CacheTTL:    ttl,
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}
	return svc
}

func TestCounts_AggregatesAndCaches(t *testing.T) {
	kyc := &fakeKycCounter{count: 3}
	vehicles := &fakeVehicleCounter{count: 5}
	cache := newFakeCache()
	svc := newCountsService(t, kyc, vehicles, cache, 30*time.Second)

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Kyc != 3 || counts.Vehicles != 5 || counts.Total != 8 {
		t.Fatalf("expected {3 5 8}, got %+v", counts)
	}

	key := cache.CacheKey("moderation", "pending_counts")
	if cache.ttls[key] != 30*time.Second {
		t.Fatalf("expected 30s cache ttl, got %s", cache.ttls[key])
	}
	var cached PendingCounts
	if err := json.Unmarshal([]byte(cache.store[key]), &cached); err != nil {
		t.Fatalf("cached payload not json: %v", err)
	}
	if cached != counts {
		t.Fatalf("cached payload mismatch: %+v", cached)
	}
}

func TestCounts_ServedFromCacheWithoutRepoCalls(t *testing.T) {
	kyc := &fakeKycCounter{count: 3}
	vehicles := &fakeVehicleCounter{count: 5}
	cache := newFakeCache()
	svc := newCountsService(t, kyc, vehicles, cache, time.Minute)

	if _, err := svc.Counts(context.Background()); err != nil {
		t.Fatalf("warm counts: %v", err)
	}
	if _, err := svc.Counts(context.Background()); err != nil {
		t.Fatalf("cached counts: %v", err)
	}
	if kyc.calls != 1 || vehicles.calls != 1 {
		t.Fatalf("expected single repo round, got kyc=%d vehicles=%d", kyc.calls, vehicles.calls)
	}
}

func TestCounts_FailedDimensionDegradesToZero(t *testing.T) {
	kyc := &fakeKycCounter{err: errors.New("kyc db down")}
	vehicles := &fakeVehicleCounter{count: 5}
	cache := newFakeCache()
	svc := newCountsService(t, kyc, vehicles, cache, time.Minute)

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts must not fail on partial outage: %v", err)
	}
	if counts.Kyc != 0 || counts.Vehicles != 5 || counts.Total != 5 {
		t.Fatalf("expected degraded {0 5 5}, got %+v", counts)
	}
}

func TestCounts_CacheReadFailureFallsThrough(t *testing.T) {
	kyc := &fakeKycCounter{count: 2}
	vehicles := &fakeVehicleCounter{count: 1}
	cache := newFakeCache()
	cache.getErr = errors.New("redis unavailable")
	svc := newCountsService(t, kyc, vehicles, cache, time.Minute)

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Total != 3 {
		t.Fatalf("expected live total 3, got %+v", counts)
	}
}

func TestRefresh_BypassesCachedValue(t *testing.T) {
	kyc := &fakeKycCounter{count: 4}
	vehicles := &fakeVehicleCounter{count: 6}
	cache := newFakeCache()
	svc := newCountsService(t, kyc, vehicles, cache, time.Minute)

	stale, _ := json.Marshal(PendingCounts{Kyc: 99, Vehicles: 99, Total: 198})
	key := cache.CacheKey("moderation", "pending_counts")
	cache.store[key] = string(stale)

	counts, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if counts.Total != 10 {
		t.Fatalf("expected recomputed total 10, got %+v", counts)
	}
	var cached PendingCounts
	if err := json.Unmarshal([]byte(cache.store[key]), &cached); err != nil {
		t.Fatalf("cached payload not json: %v", err)
	}
	if cached.Total != 10 {
		t.Fatalf("cache should hold refreshed counts, got %+v", cached)
	}
}

func TestRefreshJob_RunsService(t *testing.T) {
	kyc := &fakeKycCounter{count: 1}
	vehicles := &fakeVehicleCounter{count: 2}
	cache := newFakeCache()
	svc := newCountsService(t, kyc, vehicles, cache, time.Minute)

	job, err := NewRefreshJob(svc)
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}
	if job.Name() != "moderation-counts-refresh" {
		t.Fatalf("unexpected job name %q", job.Name())
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if cache.setHits != 1 {
		t.Fatalf("expected one cache write, got %d", cache.setHits)
	}
}
