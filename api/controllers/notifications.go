package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/autonovo/autonovo-backend/api/responses"
	"github.com/autonovo/autonovo-backend/internal/mailer"
	"github.com/autonovo/autonovo-backend/pkg/logger"
)

// Notify is the shared controller behind the four notification endpoints.
// The response contract is fixed: 200 {"success":true,"data":<provider ack>}
// on delivery, 500 {"success":false,"error":...} on any failure, validation
// included.
func Notify(dispatcher *mailer.Dispatcher, kind mailer.Kind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			_, _ = io.Copy(io.Discard, r.Body)
		}()

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			responses.WriteDispatchError(r.Context(), logg, w, err)
			return
		}

		ack, err := dispatcher.Dispatch(r.Context(), kind, payload)
		if err != nil {
			responses.WriteDispatchError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ack)
	}
}
