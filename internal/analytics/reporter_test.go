package analytics

import (
	"context"
	"testing"

	"github.com/autonovo/autonovo-backend/pkg/enums"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

func newTestReporter(t *testing.T) (*Reporter, *MemorySink) {
	t.Helper()
	sink := NewMemorySink()
	reporter, err := NewReporter(ReporterParams{
		Sink:   sink,
		Logger: logger.New(logger.Options{ServiceName: "analytics-test"}),
	})
	if err != nil {
		t.Fatalf("construct reporter: %v", err)
	}
	return reporter, sink
}

func TestPageView_AIReferralWithBrandFilter(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{
		Path:     "/veiculos",
		RawQuery: "marca=honda&ref=ze-ia",
		Title:    "Veículos - AutoNovo",
	})

	events := sink.Events()
	if len(events) != 3 {
		t.Fatalf("expected exactly 3 events, got %d", len(events))
	}
	if events[0].Type != enums.AnalyticsEventPageView {
		t.Fatalf("first event must be page_view, got %s", events[0].Type)
	}
	if events[1].Type != enums.AnalyticsEventViewItemFromAI {
		t.Fatalf("second event must be view_item_from_ai, got %s", events[1].Type)
	}
	if events[2].Type != enums.AnalyticsEventFilterByBrand {
		t.Fatalf("third event must be filter_by_brand, got %s", events[2].Type)
	}
	if events[2].Brand != "honda" {
		t.Fatalf("expected brand honda, got %q", events[2].Brand)
	}
	for _, event := range events {
		if event.PagePath != "/veiculos?marca=honda&ref=ze-ia" {
			t.Fatalf("unexpected page path %q", event.PagePath)
		}
		if event.EventID == "" || event.OccurredAt.IsZero() {
			t.Fatalf("event missing identity fields: %+v", event)
		}
	}
	if events[0].PageTitle != "Veículos - AutoNovo" {
		t.Fatalf("page title not carried: %q", events[0].PageTitle)
	}
}

func TestPageView_PlainNavigation(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{Path: "/", Title: "AutoNovo"})

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected only page_view, got %d events", len(events))
	}
	if events[0].Type != enums.AnalyticsEventPageView {
		t.Fatalf("unexpected type %s", events[0].Type)
	}
	if events[0].PagePath != "/" {
		t.Fatalf("unexpected page path %q", events[0].PagePath)
	}
}

func TestPageView_BrandFromPathSegment(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{Path: "/veiculos/marca/mercedes-benz"})

	events := sink.Events()
	if len(events) != 2 {
		t.Fatalf("expected page_view plus brand event, got %d", len(events))
	}
	if events[1].Type != enums.AnalyticsEventFilterByBrand || events[1].Brand != "mercedes-benz" {
		t.Fatalf("unexpected brand event %+v", events[1])
	}
}

func TestPageView_BrandSegmentPercentDecoded(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{Path: "/veiculos/marca/cita%C3%ABn/2020"})

	events := sink.Events()
	if len(events) != 2 {
		t.Fatalf("expected brand event, got %d events", len(events))
	}
	if events[1].Brand != "citaën" {
		t.Fatalf("expected decoded brand, got %q", events[1].Brand)
	}
}

func TestPageView_MalformedBrandSegmentSkipped(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{Path: "/veiculos/marca/%zz"})

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("malformed brand must yield only page_view, got %d events", len(events))
	}
}

func TestPageView_MalformedQueryStillEmitsPageView(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{Path: "/veiculos", RawQuery: "marca=%zz;"})

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected only page_view for malformed query, got %d", len(events))
	}
	if events[0].PagePath != "/veiculos?marca=%zz;" {
		t.Fatalf("raw query must be preserved in page path, got %q", events[0].PagePath)
	}
}

func TestPageView_OtherReferralIgnored(t *testing.T) {
	reporter, sink := newTestReporter(t)

	reporter.PageView(context.Background(), PageView{Path: "/veiculos", RawQuery: "ref=google"})

	if got := len(sink.Events()); got != 1 {
		t.Fatalf("non-AI referral must not add events, got %d", got)
	}
}
