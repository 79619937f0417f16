package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"

	"github.com/autonovo/autonovo-backend/pkg/logger"
)

type rowWriter interface {
	Write(ctx context.Context, event Event) error
}

// WorkerService consumes page events from Pub/Sub and persists them.
type WorkerService struct {
	subscription *gcppubsub.Subscriber
	writer       rowWriter
	logg         *logger.Logger
}

// NewWorkerService creates the analytics ingestion worker.
func NewWorkerService(subscription *gcppubsub.Subscriber, writer rowWriter, logg *logger.Logger) (*WorkerService, error) {
	if subscription == nil {
		return nil, errors.New("analytics subscription is required")
	}
	if writer == nil {
		return nil, errors.New("writer is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &WorkerService{subscription: subscription, writer: writer, logg: logg}, nil
}

type processResult struct {
	nack bool
}

// Run starts consuming analytics messages until the context is canceled.
func (s *WorkerService) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.subscription.Receive(ctx, func(innerCtx context.Context, msg *gcppubsub.Message) {
		if s.process(innerCtx, msg).nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

// process handles one message. Malformed payloads are dropped so they do not
// cycle through redelivery forever; only persistence failures are retried.
func (s *WorkerService) process(ctx context.Context, msg *gcppubsub.Message) processResult {
	logCtx := s.logg.WithField(ctx, "message_id", msg.ID)

	var event Event
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		s.logg.Warn(logCtx, "invalid analytics event payload")
		return processResult{}
	}
	if !event.Type.IsValid() {
		s.logg.Warn(logCtx, "unknown analytics event type")
		return processResult{}
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	logCtx = s.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
		"event_id":   event.EventID,
		"event_type": event.Type,
	})

	if err := s.writer.Write(logCtx, event); err != nil {
		s.logg.Error(logCtx, "persist analytics event failed", err)
		return processResult{nack: true}
	}

	s.logg.Info(logCtx, "analytics event ingested")
	return processResult{}
}
