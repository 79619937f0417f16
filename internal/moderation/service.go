package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/multierr"

	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/redis"
)

const countsCacheTTLDefault = 30 * time.Second

// PendingCounts aggregates the admin work queue sizes. Total is always the sum
// of the dimensions, even when one of them degraded to zero.
type PendingCounts struct {
	Kyc      int64 `json:"kyc"`
	Vehicles int64 `json:"vehicles"`
	Total    int64 `json:"total"`
}

type kycCounter interface {
	CountUnderReview(ctx context.Context) (int64, error)
}

type vehicleCounter interface {
	CountPendingModeration(ctx context.Context) (int64, error)
}

type countsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// ServiceParams groups dependencies for the moderation service.
type ServiceParams struct {
	KycRepo     kycCounter
	VehicleRepo vehicleCounter
	Cache       countsCache
	Logger      *logger.Logger
	CacheTTL    time.Duration
}

// Service aggregates moderation workload counters for the admin panel.
type Service interface {
	Counts(ctx context.Context) (PendingCounts, error)
	Refresh(ctx context.Context) (PendingCounts, error)
}

type service struct {
	kycRepo     kycCounter
	vehicleRepo vehicleCounter
	cache       countsCache
	logg        *logger.Logger
	cacheTTL    time.Duration
}

// NewService builds a moderation service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.KycRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kyc repo is required")
	}
	if params.VehicleRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle repo is required")
	}
	if params.Cache == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cache is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = countsCacheTTLDefault
	}
	return &service{
		kycRepo:     params.KycRepo,
		vehicleRepo: params.VehicleRepo,
		cache:       params.Cache,
		logg:        params.Logger,
		cacheTTL:    ttl,
	}, nil
}

// Counts returns the pending workload, served from cache when fresh.
func (s *service) Counts(ctx context.Context) (PendingCounts, error) {
	key := s.cacheKey()
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var counts PendingCounts
		if unmarshalErr := json.Unmarshal([]byte(cached), &counts); unmarshalErr == nil {
			return counts, nil
		}
		s.logg.Warn(ctx, "discarding malformed cached counts")
	} else if !errors.Is(err, redis.Nil) {
		s.logg.Error(ctx, "counts cache read failed", err)
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the counters and repopulates the cache. A failing
// dimension counts as zero so the admin panel still renders the rest.
func (s *service) Refresh(ctx context.Context) (PendingCounts, error) {
	var failures error

	kycCount, err := s.kycRepo.CountUnderReview(ctx)
	if err != nil {
		failures = multierr.Append(failures, err)
		kycCount = 0
	}
	vehicleCount, err := s.vehicleRepo.CountPendingModeration(ctx)
	if err != nil {
		failures = multierr.Append(failures, err)
		vehicleCount = 0
	}
	if failures != nil {
		s.logg.Error(ctx, "pending counts partially degraded", failures)
	}

	counts := PendingCounts{
		Kyc:      kycCount,
		Vehicles: vehicleCount,
		Total:    kycCount + vehicleCount,
	}

	payload, err := json.Marshal(counts)
	if err == nil {
		if cacheErr := s.cache.Set(ctx, s.cacheKey(), payload, s.cacheTTL); cacheErr != nil {
			s.logg.Error(ctx, "counts cache write failed", cacheErr)
		}
	}
	return counts, nil
}

func (s *service) cacheKey() string {
	return s.cache.CacheKey("moderation", "pending_counts")
}
