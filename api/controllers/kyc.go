package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/autonovo/autonovo-backend/api/middleware"
	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/internal/kyc"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

// KycStatus reports the caller's identity-verification state. Anonymous
// callers and lookup failures both get the empty result; the endpoint never
// errors.
func KycStatus(svc kyc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID *uuid.UUID
		if raw := middleware.UserIDFromContext(r.Context()); raw != "" {
			if parsed, err := uuid.Parse(raw); err == nil {
				userID = &parsed
			} else {
				logg.Warn(r.Context(), "malformed user id in token subject")
			}
		}
		responses.WriteSuccess(w, svc.Status(r.Context(), userID))
	}
}
