package analytics

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autonovo/autonovo-backend/pkg/enums"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

const (
	// aiReferralValue marks a visit that arrived through the AI shopping
	// assistant referral link.
	aiReferralValue = "ze-ia"

	refParam   = "ref"
	brandParam = "marca"

	brandListingPrefix = "/veiculos/marca/"
)

// Sink is the append-only destination the reporter writes to.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// PageView describes one navigation inside the storefront.
type PageView struct {
	Path     string
	RawQuery string
	Title    string
}

// ReporterParams groups dependencies for the reporter.
type ReporterParams struct {
	Sink   Sink
	Logger *logger.Logger
}

// Reporter derives structured analytics events from navigations. Reporting is
// fire-and-forget: a sink failure is logged and the navigation proceeds.
type Reporter struct {
	sink Sink
	logg *logger.Logger
	now  func() time.Time
}

// NewReporter builds a page-view reporter.
func NewReporter(params ReporterParams) (*Reporter, error) {
	if params.Sink == nil {
		return nil, fmt.Errorf("sink is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Reporter{sink: params.Sink, logg: params.Logger, now: time.Now}, nil
}

// PageView appends the events derived from one navigation. A base page_view
// event always goes out; an AI referral marker and a brand filter each add one
// more, in that order. Malformed input never fails the call.
func (r *Reporter) PageView(ctx context.Context, view PageView) {
	pagePath := view.Path
	if view.RawQuery != "" {
		pagePath += "?" + view.RawQuery
	}

	// A query string that does not parse still yields the base event.
	values, err := url.ParseQuery(view.RawQuery)
	if err != nil {
		values = url.Values{}
	}

	occurredAt := r.now().UTC()
	events := []Event{{
		EventID:    uuid.NewString(),
		Type:       enums.AnalyticsEventPageView,
		PagePath:   pagePath,
		PageTitle:  view.Title,
		OccurredAt: occurredAt,
	}}

	if values.Get(refParam) == aiReferralValue {
		events = append(events, Event{
			EventID:    uuid.NewString(),
			Type:       enums.AnalyticsEventViewItemFromAI,
			PagePath:   pagePath,
			PageTitle:  view.Title,
			OccurredAt: occurredAt,
		})
	}

	if brand := extractBrand(view.Path, values); brand != "" {
		events = append(events, Event{
			EventID:    uuid.NewString(),
			Type:       enums.AnalyticsEventFilterByBrand,
			PagePath:   pagePath,
			Brand:      brand,
			OccurredAt: occurredAt,
		})
	}

	for _, event := range events {
		if err := r.sink.Append(ctx, event); err != nil {
			logCtx := r.logg.WithField(ctx, "event_type", string(event.Type))
			r.logg.Error(logCtx, "analytics append failed", err)
		}
	}
}

// extractBrand resolves the brand filter from either encoding: the marca query
// parameter or the /veiculos/marca/<brand> path segment. Path values are
// percent-decoded; a value that does not decode yields no brand.
func extractBrand(path string, values url.Values) string {
	if brand := strings.TrimSpace(values.Get(brandParam)); brand != "" {
		return brand
	}
	if !strings.HasPrefix(path, brandListingPrefix) {
		return ""
	}
	segment := strings.TrimPrefix(path, brandListingPrefix)
	if idx := strings.IndexByte(segment, '/'); idx >= 0 {
		segment = segment[:idx]
	}
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(decoded)
}
