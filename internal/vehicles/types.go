package vehicles

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autonovo/autonovo-backend/pkg/db/models"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	"github.com/autonovo/autonovo-backend/pkg/money"
	"github.com/autonovo/autonovo-backend/pkg/slug"
)

// CreateInput carries the attributes needed to publish a listing.
type CreateInput struct {
	OwnerID          uuid.UUID
	Brand            string
	Model            string
	YearModel        int
	Version          *string
	Type             enums.VehicleType
	Price            decimal.Decimal
	DiagnosticRating *int
}

// VehicleDTO is the listing projection returned to clients. Prices are
// pre-formatted in pt-BR so the frontend renders them verbatim.
type VehicleDTO struct {
	ID               uuid.UUID              `json:"id"`
	Title            string                 `json:"title"`
	Brand            string                 `json:"brand"`
	Model            string                 `json:"model"`
	YearModel        int                    `json:"yearModel"`
	Version          *string                `json:"version,omitempty"`
	Type             enums.VehicleType      `json:"type"`
	TypeIcon         string                 `json:"typeIcon"`
	Price            string                 `json:"price"`
	PriceShort       string                 `json:"priceShort"`
	DiagnosticRating *int                   `json:"diagnosticRating,omitempty"`
	Slug             string                 `json:"slug"`
	ModerationStatus enums.ModerationStatus `json:"moderationStatus"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// PendingPageDTO is one page of the moderation review queue.
type PendingPageDTO struct {
	Items      []VehicleDTO `json:"items"`
	NextCursor string       `json:"nextCursor,omitempty"`
	HasMore    bool         `json:"hasMore"`
}

func toDTO(row models.Vehicle) VehicleDTO {
	version := ""
	if row.Version != nil {
		version = *row.Version
	}
	return VehicleDTO{
		ID:               row.ID,
		Title:            slug.FormatTitle(row.Brand, row.Model, version),
		Brand:            row.Brand,
		Model:            row.Model,
		YearModel:        row.YearModel,
		Version:          row.Version,
		Type:             row.Type,
		TypeIcon:         row.Type.Icon(),
		Price:            money.FormatCurrencyDecimal(row.Price),
		PriceShort:       money.FormatCurrencyShort(row.Price.IntPart()),
		DiagnosticRating: row.DiagnosticRating,
		Slug:             row.Slug,
		ModerationStatus: row.ModerationStatus,
		CreatedAt:        row.CreatedAt,
	}
}
