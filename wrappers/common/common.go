// Package common holds the carrier adapters and request helpers shared by the
// framework wrappers.
package common

import (
	"context"
	"net/http"

	"github.com/tracecarrier/cloudtrace-go/propagation"
	"github.com/tracecarrier/cloudtrace-go/trace"
)

// Config controls how the framework wrappers move trace context between
// carriers and contexts.
type Config struct {
	// Propagator is the header format used by every wrapper. Replace it
	// before serving requests to propagate a different format; the wrappers
	// only require the HTTPPropagator contract.
	Propagator trace.HTTPPropagator
}

var GlobalConfig = Config{Propagator: propagation.CloudTraceHTTPPropagator{}}

// HTTPHeaderSupplier adapts http.Header to the HeaderSupplier carrier
// contract used by propagators.
type HTTPHeaderSupplier struct {
	Header http.Header
}

// Get returns the value associated with the provided key, if any.
func (s HTTPHeaderSupplier) Get(key string) string {
	return s.Header.Get(key)
}

// Set associates the provided value with the provided key, replacing any
// prior value.
func (s HTTPHeaderSupplier) Set(key string, value string) {
	s.Header.Set(key, value)
}

// ContextFromRequest picks up any trace context present in the request
// headers and returns a context carrying it as a remote parent. Requests with
// missing or malformed headers get a context with an empty span context;
// request handling never depends on header well-formedness.
func ContextFromRequest(r *http.Request) context.Context {
	return GlobalConfig.Propagator.Extract(r.Context(), HTTPHeaderSupplier{Header: r.Header})
}

// InjectIntoRequest writes the span context in ctx into the request headers.
// If ctx holds no valid span context the request is left untouched.
func InjectIntoRequest(ctx context.Context, r *http.Request) {
	GlobalConfig.Propagator.Inject(ctx, HTTPHeaderSupplier{Header: r.Header})
}
