package enums

import "fmt"

// ModerationStatus describes the allowed values for the `moderation_status`
// column in vehicles. Listings stay pending until an administrator decides.
type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

var validModerationStatuses = []ModerationStatus{
	ModerationStatusPending,
	ModerationStatusApproved,
	ModerationStatusRejected,
}

// IsValid reports whether the value matches the canonical moderation status enum.
func (s ModerationStatus) IsValid() bool {
	for _, candidate := range validModerationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseModerationStatus converts the raw string to ModerationStatus.
func ParseModerationStatus(value string) (ModerationStatus, error) {
	for _, candidate := range validModerationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid moderation status %q", value)
}
