package vehicles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autonovo/autonovo-backend/internal/repo"
	"github.com/autonovo/autonovo-backend/pkg/db/models"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	"github.com/autonovo/autonovo-backend/pkg/pagination"
)

// Repository exposes vehicle listing persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a vehicle repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new vehicle row.
func (r *Repository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.DB(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// FindByID loads a vehicle by its identifier.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var row models.Vehicle
	if err := r.DB(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindBySlug loads a vehicle by its exact slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	var row models.Vehicle
	if err := r.DB(ctx).First(&row, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateModerationStatus moves a listing through the review pipeline.
func (r *Repository) UpdateModerationStatus(ctx context.Context, id uuid.UUID, status enums.ModerationStatus) error {
	result := r.DB(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", id).
		Update("moderation_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPendingModeration returns how many listings wait for review.
func (r *Repository) CountPendingModeration(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Vehicle{}).
		Where("moderation_status = ?", enums.ModerationStatusPending).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListPendingModeration returns the review queue newest-first using cursor
// pagination.
func (r *Repository) ListPendingModeration(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Vehicle, error) {
	query := r.DB(ctx).
		Model(&models.Vehicle{}).
		Where("moderation_status = ?", enums.ModerationStatusPending)

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	query = query.Order("created_at DESC").Order("id DESC").Limit(limit)

	var rows []models.Vehicle
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
