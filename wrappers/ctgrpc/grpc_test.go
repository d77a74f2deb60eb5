package ctgrpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracecarrier/cloudtrace-go/propagation"
	"github.com/tracecarrier/cloudtrace-go/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestUnaryServerInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "test.method"}
	interceptor := UnaryServerInterceptor()

	var got *trace.SpanContext
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = trace.GetSpanContextFromContext(ctx)
		return req, nil
	}

	md := metadata.New(map[string]string{
		"content-type":          "application/grpc",
		"x-cloud-trace-context": "105445aa7843bc8bf206b12000100000/1;o=1",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	resp, err := interceptor(ctx, "hello", info, handler)
	assert.NoError(t, err)
	assert.Equal(t, "hello", resp)
	assert.NotNil(t, got)
	assert.True(t, got.IsValid())
	assert.True(t, got.Remote)
	assert.Equal(t, trace.Sampled, got.Sampling)

	// malformed metadata must not fail the RPC
	md = metadata.New(map[string]string{"x-cloud-trace-context": "nope"})
	ctx = metadata.NewIncomingContext(context.Background(), md)
	got = nil
	_, err = interceptor(ctx, "hello", info, handler)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.False(t, got.IsValid())
}

func TestUnaryClientInterceptor(t *testing.T) {
	interceptor := UnaryClientInterceptor()

	sc := &trace.SpanContext{
		TraceID:  trace.NewTraceID(),
		SpanID:   trace.NewSpanID(),
		Sampling: trace.NotSampled,
	}
	ctx := trace.PutSpanContextInContext(context.Background(), sc)

	var outgoing metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		outgoing, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := interceptor(ctx, "test.method", nil, nil, nil, invoker)
	assert.NoError(t, err)
	values := outgoing.Get("x-cloud-trace-context")
	assert.Len(t, values, 1)
	assert.Equal(t, propagation.MarshalCloudTraceContext(sc), values[0])
}

func TestUnaryClientInterceptorWithoutSpanContext(t *testing.T) {
	interceptor := UnaryClientInterceptor()

	var outgoing metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		outgoing, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := interceptor(context.Background(), "test.method", nil, nil, nil, invoker)
	assert.NoError(t, err)
	assert.Empty(t, outgoing.Get("x-cloud-trace-context"), "nothing to inject without a span context")
}

func TestUnaryClientInterceptorPreservesMetadata(t *testing.T) {
	interceptor := UnaryClientInterceptor()

	sc := &trace.SpanContext{TraceID: trace.NewTraceID(), SpanID: trace.NewSpanID()}
	ctx := trace.PutSpanContextInContext(context.Background(), sc)
	original := metadata.New(map[string]string{"authorization": "bearer token"})
	ctx = metadata.NewOutgoingContext(ctx, original)

	var outgoing metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		outgoing, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := interceptor(ctx, "test.method", nil, nil, nil, invoker)
	assert.NoError(t, err)
	assert.Equal(t, []string{"bearer token"}, outgoing.Get("authorization"), "existing metadata should be preserved")
	assert.Len(t, outgoing.Get("x-cloud-trace-context"), 1)
	assert.Empty(t, original.Get("x-cloud-trace-context"), "the caller's metadata should not be mutated")
}
