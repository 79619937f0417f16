package cron

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/autonovo/autonovo-backend/pkg/logger"
)

type fakeLock struct {
	held     bool
	acquires int
	releases int
}

func (f *fakeLock) Acquire(context.Context) (bool, error) {
	f.acquires++
	if f.held {
		return false, nil
	}
	f.held = true
	return true, nil
}

func (f *fakeLock) Release(context.Context) error {
	f.releases++
	f.held = false
	return nil
}

type testJob struct {
	name string
	err  error
	runs int
}

func (t *testJob) Name() string { return t.name }

func (t *testJob) Run(context.Context) error {
	t.runs++
	return t.err
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "cron-test", Output: io.Discard})
}

func TestRunCycleContinuesPastFailingJob(t *testing.T) {
	healthy := &testJob{name: "healthy"}
	broken := &testJob{name: "broken", err: errors.New("boom")}
	lock := &fakeLock{}

	service, err := NewService(ServiceParams{
		Logger:   quietLogger(),
		Registry: NewRegistry(broken, healthy),
		Lock:     lock,
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}

	if err := service.runCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if broken.runs != 1 || healthy.runs != 1 {
		t.Fatalf("every job must run once, got broken=%d healthy=%d", broken.runs, healthy.runs)
	}
	if lock.releases != 1 {
		t.Fatalf("lock must be released after the cycle, releases=%d", lock.releases)
	}
}

func TestRunCycleSkipsWhenLockHeld(t *testing.T) {
	job := &testJob{name: "only"}
	service, err := NewService(ServiceParams{
		Logger:   quietLogger(),
		Registry: NewRegistry(job),
		Lock:     &fakeLock{held: true},
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}

	if err := service.runCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if job.runs != 0 {
		t.Fatalf("jobs must not run while another instance holds the lock")
	}
}

func TestNewServiceRequiresLogger(t *testing.T) {
	if _, err := NewService(ServiceParams{Lock: &fakeLock{}}); err == nil {
		t.Fatalf("expected error without logger")
	}
}
