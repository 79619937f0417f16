package enums

import "fmt"

// KycStatus describes the allowed values for the `status` column in
// kyc_verifications. The absence of a record is a distinct "not submitted"
// state and is never represented by an enum value.
type KycStatus string

const (
	KycStatusPending     KycStatus = "pending"
	KycStatusUnderReview KycStatus = "under_review"
	KycStatusApproved    KycStatus = "approved"
	KycStatusRejected    KycStatus = "rejected"
)

var validKycStatuses = []KycStatus{
	KycStatusPending,
	KycStatusUnderReview,
	KycStatusApproved,
	KycStatusRejected,
}

// IsValid reports whether the value matches the canonical KYC status enum.
func (s KycStatus) IsValid() bool {
	for _, candidate := range validKycStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseKycStatus converts the raw string to KycStatus.
func ParseKycStatus(value string) (KycStatus, error) {
	for _, candidate := range validKycStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid kyc status %q", value)
}
