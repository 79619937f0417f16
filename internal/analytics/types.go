package analytics

import (
	"time"

	"github.com/autonovo/autonovo-backend/pkg/enums"
)

// Event is the canonical page-analytics envelope. It is what the reporter
// appends to the sink, what travels over Pub/Sub and what the worker persists.
type Event struct {
	EventID    string                   `json:"event_id"`
	Type       enums.AnalyticsEventType `json:"event_type"`
	PagePath   string                   `json:"page_path"`
	PageTitle  string                   `json:"page_title,omitempty"`
	Brand      string                   `json:"brand,omitempty"`
	OccurredAt time.Time                `json:"occurred_at"`
}

// PageEventRow is the BigQuery projection of an Event.
type PageEventRow struct {
	EventID    string    `bigquery:"event_id"`
	EventType  string    `bigquery:"event_type"`
	PagePath   string    `bigquery:"page_path"`
	PageTitle  *string   `bigquery:"page_title"`
	Brand      *string   `bigquery:"brand"`
	OccurredAt time.Time `bigquery:"occurred_at"`
}

// Row converts the event into its BigQuery shape.
func (e Event) Row() PageEventRow {
	row := PageEventRow{
		EventID:    e.EventID,
		EventType:  string(e.Type),
		PagePath:   e.PagePath,
		OccurredAt: e.OccurredAt,
	}
	if e.PageTitle != "" {
		title := e.PageTitle
		row.PageTitle = &title
	}
	if e.Brand != "" {
		brand := e.Brand
		row.Brand = &brand
	}
	return row
}
