package ctnethttp

import (
	"net/http"

	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
)

// WrapHandler picks up incoming trace context before invoking the wrapped
// handler. The handler sees the caller's span context via the request
// context.
func WrapHandler(handler http.Handler) http.Handler {
	wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
		// push the context with the caller's span context on to the request
		r = r.WithContext(common.ContextFromRequest(r))
		handler.ServeHTTP(w, r)
	}
	return http.HandlerFunc(wrappedHandler)
}

// WrapHandlerFunc picks up incoming trace context before invoking the wrapped
// handler function.
func WrapHandlerFunc(hf func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(common.ContextFromRequest(r))
		hf(w, r)
	}
}

// WrapRoundTripper returns an http.RoundTripper that writes the span context
// found in the request context into the outbound request headers. Passing nil
// wraps http.DefaultTransport.
func WrapRoundTripper(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &roundTripper{wrapped: rt}
}

type roundTripper struct {
	wrapped http.RoundTripper
}

func (rt *roundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	r = r.Clone(r.Context())
	common.InjectIntoRequest(r.Context(), r)
	return rt.wrapped.RoundTrip(r)
}
