package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autonovo/autonovo-backend/pkg/enums"
)

// Vehicle is one classified listing. New listings start with a pending
// moderation status and only become publicly visible after approval.
type Vehicle struct {
	ID               uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID          uuid.UUID              `gorm:"type:uuid;not null;index"`
	Brand            string                 `gorm:"type:text;not null"`
	Model            string                 `gorm:"type:text;not null"`
	YearModel        int                    `gorm:"not null"`
	Version          *string                `gorm:"type:text"`
	Type             enums.VehicleType      `gorm:"type:text;not null"`
	Price            decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
	DiagnosticRating *int                   `gorm:"type:smallint"`
	Slug             string                 `gorm:"type:text;not null;uniqueIndex"`
	ModerationStatus enums.ModerationStatus `gorm:"type:text;not null;default:'pending';index"`
	CreatedAt        time.Time              `gorm:"type:timestamptz;default:now()"`
	UpdatedAt        time.Time              `gorm:"type:timestamptz;default:now()"`
}
