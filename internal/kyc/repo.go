package kyc

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autonovo/autonovo-backend/internal/repo"
	"github.com/autonovo/autonovo-backend/pkg/db/models"
	"github.com/autonovo/autonovo-backend/pkg/enums"
)

// Repository exposes KYC verification persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a KYC repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindByUser loads the verification row for a user. At most one row exists
// per user, so gorm.ErrRecordNotFound means the user never submitted.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.KycVerification, error) {
	var row models.KycVerification
	if err := r.DB(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert inserts or replaces the verification status for a user.
func (r *Repository) Upsert(ctx context.Context, verification *models.KycVerification) (*models.KycVerification, error) {
	err := r.DB(ctx).
		Where("user_id = ?", verification.UserID).
		Assign("status", verification.Status).
		FirstOrCreate(verification).Error
	if err != nil {
		return nil, err
	}
	return verification, nil
}

// CountUnderReview returns how many verifications are waiting on a reviewer.
func (r *Repository) CountUnderReview(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.KycVerification{}).
		Where("status = ?", enums.KycStatusUnderReview).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
