package cloudtrace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracecarrier/cloudtrace-go/trace"
)

type mockHeader map[string]string

func (m mockHeader) Get(key string) string { return m[key] }

func (m mockHeader) Set(key string, value string) { m[key] = value }

func TestPropagatorRoundTrip(t *testing.T) {
	propagator := Propagator()
	sc := NewSpanContext(trace.Sampled)

	header := mockHeader{}
	propagator.Inject(trace.PutSpanContextInContext(context.Background(), sc), header)
	assert.Len(t, propagator.Fields(), 1)
	assert.NotEmpty(t, header[propagator.Fields()[0]])

	ctx := propagator.Extract(context.Background(), header)
	got := trace.GetSpanContextFromContext(ctx)
	assert.NotNil(t, got)
	assert.Equal(t, sc.TraceID, got.TraceID)
	assert.Equal(t, sc.SpanID, got.SpanID)
	assert.Equal(t, trace.Sampled, got.Sampling)
	assert.True(t, got.Remote)
}

func TestNewSpanContext(t *testing.T) {
	sc := NewSpanContext(trace.NotSampled)
	assert.True(t, sc.IsValid())
	assert.Equal(t, trace.NotSampled, sc.Sampling)
	assert.False(t, sc.Remote)
}
