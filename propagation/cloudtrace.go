package propagation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tracecarrier/cloudtrace-go/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// assumes a header of the form:
//
// TRACE_ID/SPAN_ID;o=OPTIONS
//
// TRACE_ID is a 32-character lowercase hex string, SPAN_ID is the unsigned
// decimal rendering of a 64-bit span id, and the ;o= suffix is optional:
// o=1 means the backend decided to sample the trace, o=0 means it decided
// not to, and an absent (or unrecognized) suffix leaves the decision to the
// receiving service.
//
// ex: x-cloud-trace-context: 105445aa7843bc8bf206b12000100000/1;o=1

const (
	cloudTracePropagationHTTPHeader = "x-cloud-trace-context"
)

// cloudTraceFields is initialized once at startup and shared by every
// Fields call for the process lifetime.
var cloudTraceFields = []string{cloudTracePropagationHTTPHeader}

// The distinct parse failure causes. They stay internal so unit tests can
// tell them apart; the exported Unmarshal folds them into a single
// PropagationError because callers fall back to an empty span context no
// matter which one fired.
var (
	errMissingSeparator = errors.New("no / separator in trace context header")
	errInvalidTraceID   = errors.New("trace id is not 32 lowercase hex characters or is all zeroes")
	errInvalidSpanID    = errors.New("span id is not an unsigned 64-bit decimal integer")
)

// MarshalCloudTraceContext uses the information in sc to create a trace
// context header in the Google Cloud Trace header format. It returns the
// serialized form of the trace context, ready to be inserted into the headers
// of an outbound HTTP request.
//
// If sc is nil or not valid, the returned value will be an empty string.
func MarshalCloudTraceContext(sc *trace.SpanContext) string {
	if sc == nil || !sc.IsValid() {
		return ""
	}
	h := fmt.Sprintf("%s/%d", sc.TraceID, sc.SpanIDUint64())
	switch sc.Sampling {
	case trace.Sampled:
		h += ";o=1"
	case trace.NotSampled:
		h += ";o=0"
	}
	// a deferred decision carries no option suffix and no trailing separator
	return h
}

// UnmarshalCloudTraceContext parses the information provided in the header
// and creates a SpanContext instance. The returned span context is marked
// remote: it represents a parent span observed in another process.
//
// All malformed headers are reported the same way, as a single
// PropagationError; callers are expected to proceed without a trace context
// rather than fail the request.
func UnmarshalCloudTraceContext(header string) (*trace.SpanContext, error) {
	sc, err := parseCloudTraceHeader(header)
	if err != nil {
		return nil, &PropagationError{"unable to parse cloud trace header: %s", err}
	}
	return sc, nil
}

// parseCloudTraceHeader does the actual parsing and reports which part of the
// grammar was violated.
func parseCloudTraceHeader(header string) (*trace.SpanContext, error) {
	header = strings.TrimSpace(header)
	tid, rest, found := strings.Cut(header, "/")
	if !found {
		return nil, errMissingSeparator
	}
	traceID, err := oteltrace.TraceIDFromHex(tid)
	if err != nil {
		// wrong length, non-hex and all-zero ids all land here
		return nil, errInvalidTraceID
	}
	sid, opts, _ := strings.Cut(rest, ";")
	spanID, err := strconv.ParseUint(sid, 10, 64)
	if err != nil {
		return nil, errInvalidSpanID
	}
	sampling := trace.Deferred
	switch opts {
	case "o=0":
		sampling = trace.NotSampled
	case "o=1":
		sampling = trace.Sampled
	}
	return &trace.SpanContext{
		TraceID:  traceID,
		SpanID:   trace.SpanIDFromUint64(spanID),
		Sampling: sampling,
		Remote:   true,
	}, nil
}

// CloudTraceHTTPPropagator understands how to parse and generate Google Cloud
// Trace propagation headers. It is stateless and safe for concurrent use.
type CloudTraceHTTPPropagator struct{}

// Inject serializes the span context found in ctx into header. If ctx holds
// no valid span context, the header is left untouched.
func (CloudTraceHTTPPropagator) Inject(ctx context.Context, header trace.HeaderSupplier) {
	sc := trace.GetSpanContextFromContext(ctx)
	if sc == nil || !sc.IsValid() {
		return
	}
	header.Set(cloudTracePropagationHTTPHeader, MarshalCloudTraceContext(sc))
}

// Extract parses the trace header and returns a new context carrying the
// resulting span context as a remote parent. When the header is missing or
// malformed the returned context carries an empty span context instead; the
// caller never sees an error and never keeps a stale span context.
func (CloudTraceHTTPPropagator) Extract(ctx context.Context, header trace.HeaderSupplier) context.Context {
	sc, err := UnmarshalCloudTraceContext(header.Get(cloudTracePropagationHTTPHeader))
	if err != nil {
		return trace.PutSpanContextInContext(ctx, &trace.SpanContext{})
	}
	return trace.PutRemoteSpanContextInContext(ctx, sc)
}

// Fields returns the header keys this propagator reads and writes.
func (CloudTraceHTTPPropagator) Fields() []string {
	return cloudTraceFields
}
