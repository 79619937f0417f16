package middleware

import (
	"fmt"
	"net/http"

	"github.com/autonovo/autonovo-backend/api/responses"
	pkgerrors "github.com/autonovo/autonovo-backend/pkg/errors"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

// Recoverer converts handler panics into a 500 response instead of tearing
// down the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				cause := recover()
				if cause == nil {
					return
				}
				err := fmt.Errorf("panic: %v", cause)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithField(ctx, "panic", cause)
					logg.Error(ctx, "panic.recovered", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
