package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
)

const defaultPublishTimeout = 10 * time.Second

type publisher interface {
	Publish(ctx context.Context, msg *gcppubsub.Message) publishResult
}

type publishResult interface {
	Get(ctx context.Context) (string, error)
}

// PubSubSink publishes events to the analytics topic.
type PubSubSink struct {
	pub     publisher
	timeout time.Duration
}

// NewPubSubSink wraps the analytics topic publisher as a Sink.
func NewPubSubSink(pub *gcppubsub.Publisher) (*PubSubSink, error) {
	if pub == nil {
		return nil, errors.New("analytics publisher is required")
	}
	return &PubSubSink{pub: &gcpPublisher{Publisher: pub}, timeout: defaultPublishTimeout}, nil
}

// Append publishes one event and waits for the broker acknowledgment.
func (s *PubSubSink) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal analytics event: %w", err)
	}
	msg := &gcppubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_id":   event.EventID,
			"event_type": string(event.Type),
		},
	}

	publishCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result := s.pub.Publish(publishCtx, msg)
	if result == nil {
		return errors.New("analytics publisher returned nil result")
	}
	if _, err := result.Get(publishCtx); err != nil {
		return fmt.Errorf("publish analytics event: %w", err)
	}
	return nil
}

type gcpPublisher struct {
	*gcppubsub.Publisher
}

func (p *gcpPublisher) Publish(ctx context.Context, msg *gcppubsub.Message) publishResult {
	if p == nil || p.Publisher == nil {
		return nil
	}
	return p.Publisher.Publish(ctx, msg)
}

// MemorySink buffers events in process memory. Tests and local development use
// it in place of the broker.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink builds an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append stores the event.
func (s *MemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
