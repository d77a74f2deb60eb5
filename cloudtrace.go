package cloudtrace

import (
	"github.com/tracecarrier/cloudtrace-go/propagation"
	"github.com/tracecarrier/cloudtrace-go/trace"
)

// Propagator returns the propagator for the Google Cloud Trace header format,
// ready to be registered with anything that accepts the HTTPPropagator
// contract.
func Propagator() trace.HTTPPropagator {
	return propagation.CloudTraceHTTPPropagator{}
}

// NewSpanContext returns a span context with freshly generated trace and span
// ids and the provided sampling decision. It is a convenience for callers
// that originate traces rather than continue one from an incoming header.
func NewSpanContext(decision trace.SamplingDecision) *trace.SpanContext {
	return &trace.SpanContext{
		TraceID:  trace.NewTraceID(),
		SpanID:   trace.NewSpanID(),
		Sampling: decision,
	}
}
