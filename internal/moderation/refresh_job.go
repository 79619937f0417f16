package moderation

import (
	"context"
	"fmt"
)

// RefreshJob recomputes the pending counters on a schedule so the cached
// value stays warm between admin visits.
type RefreshJob struct {
	svc Service
}

// NewRefreshJob builds the scheduled counts refresher.
func NewRefreshJob(svc Service) (*RefreshJob, error) {
	if svc == nil {
		return nil, fmt.Errorf("moderation service required")
	}
	return &RefreshJob{svc: svc}, nil
}

// Name identifies the job in logs and metrics.
func (j *RefreshJob) Name() string { return "moderation-counts-refresh" }

// Run recomputes and caches the pending counts.
func (j *RefreshJob) Run(ctx context.Context) error {
	if _, err := j.svc.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh pending counts: %w", err)
	}
	return nil
}
