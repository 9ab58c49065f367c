package net_test

import (
	"context"
	"testing"

	pnet "scorebook/internal/platform/net"
)

func TestRequestID(t *testing.T) {
	ctx := pnet.WithRequestID(context.Background(), "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q, want req-123", got)
	}
	if got := pnet.RequestID(pnet.WithRequestID(context.Background(), "")); got != "" {
		t.Fatalf("empty id should not be stored, got %q", got)
	}
}
