package enums

import "fmt"

// AnalyticsEventType is the canonical event_type for page analytics routing.
type AnalyticsEventType string

const (
	AnalyticsEventPageView       AnalyticsEventType = "page_view"
	AnalyticsEventViewItemFromAI AnalyticsEventType = "view_item_from_ai"
	AnalyticsEventFilterByBrand  AnalyticsEventType = "filter_by_brand"
)

var validAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventPageView,
	AnalyticsEventViewItemFromAI,
	AnalyticsEventFilterByBrand,
}

// IsValid reports whether the value matches the canonical analytics event_type enum.
func (a AnalyticsEventType) IsValid() bool {
	for _, candidate := range validAnalyticsEventTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAnalyticsEventType converts the raw string to AnalyticsEventType.
func ParseAnalyticsEventType(value string) (AnalyticsEventType, error) {
	for _, candidate := range validAnalyticsEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid analytics event type %q", value)
}
