package ctgorilla

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
)

var _ mux.MiddlewareFunc = Middleware

// Middleware is a gorilla middleware that picks up incoming trace context and
// makes it available to handlers through the request context. Install it with
// (*mux.Router).Use.
func Middleware(handler http.Handler) http.Handler {
	wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
		// push the context with the caller's span context on to the request
		r = r.WithContext(common.ContextFromRequest(r))
		handler.ServeHTTP(w, r)
	}
	return http.HandlerFunc(wrappedHandler)
}
