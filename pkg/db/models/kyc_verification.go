package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autonovo/autonovo-backend/pkg/enums"
)

// KycVerification is the identity-verification record for one user. At most one
// row exists per user; absence means the user never submitted documents.
type KycVerification struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Status    enums.KycStatus `gorm:"type:text;not null;default:'pending'"`
	CreatedAt time.Time       `gorm:"type:timestamptz;default:now()"`
	UpdatedAt time.Time       `gorm:"type:timestamptz;default:now()"`
}
