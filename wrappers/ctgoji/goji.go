package ctgoji

import (
	"net/http"

	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
)

// Middleware is specifically to use with goji's router.Use() function for
// inserting middleware. It picks up incoming trace context before the muxer
// dispatches to the matched handler.
func Middleware(handler http.Handler) http.Handler {
	wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(common.ContextFromRequest(r))
		handler.ServeHTTP(w, r)
	}
	return http.HandlerFunc(wrappedHandler)
}
