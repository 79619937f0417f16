package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
)

type fakePublisher struct {
	msgs []*gcppubsub.Message
	err  error
}

type fakePublishResult struct {
	err error
}

func (r *fakePublishResult) Get(context.Context) (string, error) {
	return "server-id", r.err
}

func (p *fakePublisher) Publish(_ context.Context, msg *gcppubsub.Message) publishResult {
	p.msgs = append(p.msgs, msg)
	return &fakePublishResult{err: p.err}
}

func TestPubSubSink_AppendPublishesEnvelope(t *testing.T) {
	pub := &fakePublisher{}
	sink := &PubSubSink{pub: pub, timeout: time.Second}

	event := Event{
		EventID:    "evt-1",
		Type:       "page_view",
		PagePath:   "/veiculos",
		OccurredAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := sink.Append(context.Background(), event); err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(pub.msgs) != 1 {
		t.Fatalf("expected one publish, got %d", len(pub.msgs))
	}

	msg := pub.msgs[0]
	if msg.Attributes["event_id"] != "evt-1" || msg.Attributes["event_type"] != "page_view" {
		t.Fatalf("attributes not set: %v", msg.Attributes)
	}
	var decoded Event
	if err := json.Unmarshal(msg.Data, &decoded); err != nil {
		t.Fatalf("payload not json: %v", err)
	}
	if decoded != event {
		t.Fatalf("payload mismatch: %+v", decoded)
	}
}

func TestPubSubSink_BrokerErrorPropagates(t *testing.T) {
	pub := &fakePublisher{err: errors.New("topic closed")}
	sink := &PubSubSink{pub: pub, timeout: time.Second}

	if err := sink.Append(context.Background(), Event{EventID: "evt-2", Type: "page_view"}); err == nil {
		t.Fatalf("expected broker error to propagate")
	}
}
