package controllers

import (
	"net/http"

	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/api/validators"
	"github.com/autonovo/autonovo-backend/internal/analytics"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

type pageViewBody struct {
	Path     string `json:"path" validate:"required"`
	RawQuery string `json:"query"`
	Title    string `json:"title"`
}

// CollectPageView accepts a navigation beacon from the storefront and feeds
// the reporter. Collection is best effort: once the body parses, the endpoint
// always acknowledges.
func CollectPageView(reporter *analytics.Reporter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body pageViewBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reporter.PageView(r.Context(), analytics.PageView{
			Path:     body.Path,
			RawQuery: body.RawQuery,
			Title:    body.Title,
		})
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "queued"})
	}
}
