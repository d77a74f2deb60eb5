package trace

import (
	"context"
)

// HeaderSupplier is a container for trace propagation headers: anything with
// string-keyed Get and Set, such as http.Header, can act as one.
type HeaderSupplier interface {
	Get(key string) string
	Set(key string, value string)
}

// HTTPPropagator serializes and deserializes span contexts to and from a
// HeaderSupplier using a specific wire format.
type HTTPPropagator interface {
	// Inject writes the span context found in ctx into header. Propagators
	// leave the header untouched when ctx holds no valid span context.
	Inject(ctx context.Context, header HeaderSupplier)
	// Extract reads the propagation headers and returns a new context
	// carrying the parsed span context as a remote parent. Extract never
	// fails: a malformed header yields a context carrying an empty span
	// context.
	Extract(ctx context.Context, header HeaderSupplier) context.Context
	// Fields lists the header keys the propagator reads and writes, for
	// frameworks that declare or strip propagation headers without doing a
	// full extract.
	Fields() []string
}
