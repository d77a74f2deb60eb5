package trace

import (
	"context"
)

type cloudtraceContextKey string

const spanContextContextKey cloudtraceContextKey = "cloudtraceSpanContextKey"

// GetSpanContextFromContext retrieves the current span context from the
// passed in context or returns nil if none exists.
func GetSpanContextFromContext(ctx context.Context) *SpanContext {
	if ctx != nil {
		if val := ctx.Value(spanContextContextKey); val != nil {
			if sc, ok := val.(*SpanContext); ok {
				return sc
			}
		}
	}
	return nil
}

// PutSpanContextInContext takes an existing context and a span context and
// pushes the span context into the context. It will replace any span context
// that already exists in the context. Span contexts put in context are
// retrieved using GetSpanContextFromContext.
func PutSpanContextInContext(ctx context.Context, sc *SpanContext) context.Context {
	return context.WithValue(ctx, spanContextContextKey, sc)
}

// PutRemoteSpanContextInContext stores sc as a remote parent observed in
// another process. The stored copy always has Remote set; sc itself is not
// mutated.
func PutRemoteSpanContextInContext(ctx context.Context, sc *SpanContext) context.Context {
	if sc == nil {
		return ctx
	}
	remote := *sc
	remote.Remote = true
	return PutSpanContextInContext(ctx, &remote)
}
