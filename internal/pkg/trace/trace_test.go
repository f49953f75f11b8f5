package trace

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc123")
	assert.Equal(t, "abc123", GetTraceID(ctx))
	assert.Equal(t, "", GetTraceID(context.Background()))
}

func TestGenerateTraceID(t *testing.T) {
	a := GenerateTraceID()
	b := GenerateTraceID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestExtractFromHeader(t *testing.T) {
	h := http.Header{}
	h.Set("X-Trace-Id", "trace-1")
	h.Set("X-Request-Id", "req-1")
	assert.Equal(t, "trace-1", ExtractFromHeader(h))

	h = http.Header{}
	h.Set("X-Request-Id", "req-1")
	assert.Equal(t, "req-1", ExtractFromHeader(h))

	h = http.Header{}
	h.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", ExtractFromHeader(h))

	// 全部缺失时生成新 ID
	assert.Len(t, ExtractFromHeader(http.Header{}), 32)
}
