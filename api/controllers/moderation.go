package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/api/validators"
	"github.com/autonovo/autonovo-backend/internal/moderation"
	"github.com/autonovo/autonovo-backend/internal/vehicles"
	"github.com/autonovo/autonovo-backend/pkg/enums"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/pagination"
)

// PendingCounts returns the aggregated moderation workload for the admin
// dashboard badge.
func PendingCounts(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.Counts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, counts)
	}
}

// PendingVehicles lists the vehicle review queue with cursor pagination.
func PendingVehicles(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}
		page, err := svc.PendingModeration(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

type moderateVehicleBody struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ModerateVehicle records a review outcome for one listing.
func ModerateVehicle(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle id"))
			return
		}
		var body moderateVehicleBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseModerationStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}
		if err := svc.Moderate(r.Context(), id, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": body.Status})
	}
}
