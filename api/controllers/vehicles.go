package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autonovo/autonovo-backend/api/middleware"
	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/api/validators"
	"github.com/autonovo/autonovo-backend/internal/vehicles"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/money"
)

type createVehicleBody struct {
	Brand            string  `json:"brand" validate:"required"`
	Model            string  `json:"model" validate:"required"`
	YearModel        int     `json:"yearModel" validate:"required,min=1950"`
	Version          *string `json:"version,omitempty"`
	Type             string  `json:"type" validate:"required"`
	Price            string  `json:"price" validate:"required"`
	DiagnosticRating *int    `json:"diagnosticRating,omitempty"`
}

// CreateVehicle publishes a new listing for the authenticated seller. Prices
// arrive as pt-BR formatted amounts ("110.000,00") and are stored as exact
// decimals.
func CreateVehicle(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body createVehicleBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicleType, err := enums.ParseVehicleType(body.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle type"))
			return
		}

		price, err := money.ParseCurrency(body.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price"))
			return
		}

		dto, err := svc.Create(r.Context(), vehicles.CreateInput{
			OwnerID:          ownerID,
			Brand:            body.Brand,
			Model:            body.Model,
			YearModel:        body.YearModel,
			Version:          body.Version,
			Type:             vehicleType,
			Price:            price,
			DiagnosticRating: body.DiagnosticRating,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// VehicleBySlug resolves a public listing URL back to its listing.
func VehicleBySlug(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := svc.ResolveSlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
