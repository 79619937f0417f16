package controllers

import (
	"net/http"

	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/pkg/enums"
)

// VehicleTypes returns the closed vehicle-type option set the listing form
// renders.
func VehicleTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, enums.VehicleTypeOptions())
	}
}

// DiagnosticRatings returns the 1..5 diagnostic rating scale with labels.
func DiagnosticRatings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, enums.DiagnosticRatingOptions())
	}
}
