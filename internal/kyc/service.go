package kyc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autonovo/autonovo-backend/pkg/db/models"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

// StatusResult describes where a user stands in identity verification.
// A nil Status means the user never submitted documents.
type StatusResult struct {
	Status       *enums.KycStatus `json:"status"`
	IsVerified   bool             `json:"isVerified"`
	HasSubmitted bool             `json:"hasSubmitted"`
}

// ServiceParams groups dependencies for the KYC service.
type ServiceParams struct {
	Repo   statusReader
	Logger *logger.Logger
}

// Service exposes read access to KYC verification state.
type Service interface {
	Status(ctx context.Context, userID *uuid.UUID) StatusResult
}

type statusReader interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.KycVerification, error)
}

type service struct {
	repo statusReader
	logg *logger.Logger
}

// NewService builds a KYC service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kyc repo is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{repo: params.Repo, logg: params.Logger}, nil
}

// Status resolves the verification state for a user. An anonymous caller gets
// the zero result. Lookup failures degrade to the same zero result so that a
// database hiccup never blocks page rendering; the error is only logged.
func (s *service) Status(ctx context.Context, userID *uuid.UUID) StatusResult {
	if userID == nil || *userID == uuid.Nil {
		return StatusResult{}
	}
	row, err := s.repo.FindByUser(ctx, *userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logCtx := s.logg.WithUserID(ctx, userID.String())
			s.logg.Error(logCtx, "kyc status lookup failed", err)
		}
		return StatusResult{}
	}
	status := row.Status
	return StatusResult{
		Status:       &status,
		IsVerified:   status == enums.KycStatusApproved,
		HasSubmitted: true,
	}
}
