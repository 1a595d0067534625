package middleware

import (
	"net/http"

	"github.com/moath17/taskdashbord-sub001/internal/handler/http/response"
)

// analyticsDisabledMessage is the fixed message returned while the smart
// analytics surface is switched off.
const analyticsDisabledMessage = "Smart analytics is disabled for this deployment"

// AnalyticsEnabled gates the whole analytics subtree behind a startup-time
// flag. The reporting core itself has no notion of being enabled; only the
// HTTP layer knows about the switch.
func AnalyticsEnabled(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				response.Forbidden(w, analyticsDisabledMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
