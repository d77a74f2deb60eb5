// Package trace holds the in-process representation of propagated trace
// context and the contracts used to move it across process boundaries. It
// deliberately stops short of span creation: the types here identify a trace
// well enough to correlate it across services, nothing more.
package trace

import (
	"encoding/binary"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SamplingDecision records whether the tracing backend has decided to sample
// a trace. Deferred means no decision has been made yet and the receiving
// service is expected to make its own.
type SamplingDecision int

const (
	Deferred SamplingDecision = iota
	NotSampled
	Sampled
)

// SpanContext contains information about a trace that can cross process
// boundaries. Typically this information is parsed from an incoming trace
// context header.
type SpanContext struct {
	TraceID  oteltrace.TraceID
	SpanID   oteltrace.SpanID
	Sampling SamplingDecision
	// Remote is true when the span context was reconstructed from an incoming
	// header rather than created in this process.
	Remote bool
	// TraceState carries vendor-neutral auxiliary state. Formats that have no
	// such state leave it empty.
	TraceState oteltrace.TraceState
}

// hasTraceID checks that the trace ID is valid.
func (sc SpanContext) hasTraceID() bool {
	return sc.TraceID.IsValid()
}

// hasSpanID checks that the span ID is valid.
func (sc SpanContext) hasSpanID() bool {
	return sc.SpanID.IsValid()
}

// IsValid checks if the SpanContext is valid. A valid SpanContext has a
// non-zero trace ID and a non-zero span ID.
func (sc SpanContext) IsValid() bool {
	return sc.hasTraceID() && sc.hasSpanID()
}

// SpanIDUint64 returns the numeric value of the span ID. Header formats that
// carry span ids as decimal integers serialize this value.
func (sc SpanContext) SpanIDUint64() uint64 {
	return binary.BigEndian.Uint64(sc.SpanID[:])
}

// SpanIDFromUint64 builds a span ID from its numeric value.
func SpanIDFromUint64(id uint64) oteltrace.SpanID {
	var sid oteltrace.SpanID
	binary.BigEndian.PutUint64(sid[:], id)
	return sid
}

// NewTraceID generates a random trace ID for callers that originate traces.
func NewTraceID() oteltrace.TraceID {
	return oteltrace.TraceID(uuid.Must(uuid.NewRandom()))
}

// NewSpanID generates a random span ID.
func NewSpanID() oteltrace.SpanID {
	var sid oteltrace.SpanID
	u := uuid.Must(uuid.NewRandom())
	copy(sid[:], u[:8])
	return sid
}
