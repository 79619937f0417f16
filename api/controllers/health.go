package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/pkg/config"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger checks one backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AutoNovo-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every named dependency answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AutoNovo-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				logCtx := logg.WithField(r.Context(), "dependency", name)
				logg.Error(logCtx, "readiness check failed", err)
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependency unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
