package ctgrpc

import (
	"context"

	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// metadataSupplier adapts gRPC metadata to the HeaderSupplier carrier
// contract used by propagators.
type metadataSupplier struct {
	metadata metadata.MD
}

// Get returns the first value associated with the provided key, if any.
func (s metadataSupplier) Get(key string) string {
	values := s.metadata.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Set associates the provided value with the provided key, replacing any
// prior values.
func (s metadataSupplier) Set(key string, value string) {
	s.metadata.Set(key, value)
}

// UnaryServerInterceptor returns an interceptor that picks up any trace
// context in the incoming request metadata and makes it available to the
// handler through its context.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			ctx = common.GlobalConfig.Propagator.Extract(ctx, metadataSupplier{metadata: md})
		}
		return handler(ctx, req)
	}
}

// UnaryClientInterceptor returns an interceptor that writes the span context
// found in ctx into the outgoing request metadata.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			// the metadata attached to ctx is shared; copy before writing
			md = md.Copy()
		} else {
			md = metadata.New(nil)
		}
		common.GlobalConfig.Propagator.Inject(ctx, metadataSupplier{metadata: md})
		ctx = metadata.NewOutgoingContext(ctx, md)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
