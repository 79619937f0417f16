package vehicles

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autonovo/autonovo-backend/pkg/db"
	"github.com/autonovo/autonovo-backend/pkg/db/models"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/pagination"
	"github.com/autonovo/autonovo-backend/pkg/slug"
)

type vehicleStore interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	FindBySlug(ctx context.Context, slug string) (*models.Vehicle, error)
	UpdateModerationStatus(ctx context.Context, id uuid.UUID, status enums.ModerationStatus) error
	ListPendingModeration(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Vehicle, error)
}

// ServiceParams groups dependencies for the vehicle service.
type ServiceParams struct {
	Repo vehicleStore
}

// Service exposes business rules for vehicle listings.
type Service interface {
	Create(ctx context.Context, input CreateInput) (VehicleDTO, error)
	ResolveSlug(ctx context.Context, value string) (VehicleDTO, error)
	PendingModeration(ctx context.Context, params pagination.Params) (PendingPageDTO, error)
	Moderate(ctx context.Context, id uuid.UUID, status enums.ModerationStatus) error
}

type service struct {
	repo vehicleStore
}

// NewService builds a vehicle service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// Create validates the listing, derives its slug and persists it in pending
// moderation state.
func (s *service) Create(ctx context.Context, input CreateInput) (VehicleDTO, error) {
	if input.OwnerID == uuid.Nil {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	if strings.TrimSpace(input.Brand) == "" || strings.TrimSpace(input.Model) == "" {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "brand and model are required")
	}
	if !input.Type.IsValid() {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid vehicle type")
	}
	if input.Price.IsNegative() {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.DiagnosticRating != nil && !enums.DiagnosticRating(*input.DiagnosticRating).IsValid() {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "diagnostic rating out of range")
	}

	id := uuid.New()
	version := ""
	if input.Version != nil {
		version = *input.Version
	}
	row := &models.Vehicle{
		ID:               id,
		OwnerID:          input.OwnerID,
		Brand:            strings.TrimSpace(input.Brand),
		Model:            strings.TrimSpace(input.Model),
		YearModel:        input.YearModel,
		Version:          input.Version,
		Type:             input.Type,
		Price:            input.Price,
		DiagnosticRating: input.DiagnosticRating,
		Slug:             slug.GenerateWithID(id.String(), input.Brand, input.Model, input.YearModel, version),
		ModerationStatus: enums.ModerationStatusPending,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return VehicleDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "listing already exists")
		}
		return VehicleDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create vehicle")
	}
	return toDTO(*created), nil
}

// ResolveSlug locates a listing from an URL slug. Exact slug match is tried
// first; failing that, the identifier embedded in the slug is recovered so
// renamed listings keep their old links working.
func (s *service) ResolveSlug(ctx context.Context, value string) (VehicleDTO, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	row, err := s.repo.FindBySlug(ctx, trimmed)
	if err == nil {
		return toDTO(*row), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return VehicleDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vehicle by slug")
	}

	id, parseErr := uuid.Parse(slug.ExtractID(trimmed))
	if parseErr != nil {
		return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	row, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VehicleDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return VehicleDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vehicle by id")
	}
	return toDTO(*row), nil
}

// PendingModeration returns a page of the review queue for the admin panel.
func (s *service) PendingModeration(ctx context.Context, params pagination.Params) (PendingPageDTO, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return PendingPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	rows, err := s.repo.ListPendingModeration(ctx, cursor, limit+1)
	if err != nil {
		return PendingPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending vehicles")
	}

	page := PendingPageDTO{}
	if len(rows) > limit {
		rows = rows[:limit]
		page.HasMore = true
		last := rows[len(rows)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	page.Items = make([]VehicleDTO, 0, len(rows))
	for _, row := range rows {
		page.Items = append(page.Items, toDTO(row))
	}
	return page, nil
}

// Moderate moves a listing to the given review outcome.
func (s *service) Moderate(ctx context.Context, id uuid.UUID, status enums.ModerationStatus) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "vehicle id is required")
	}
	if !status.IsValid() || status == enums.ModerationStatusPending {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid moderation outcome")
	}
	if err := s.repo.UpdateModerationStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update moderation status")
	}
	return nil
}
