package net_test

import (
	"context"
	"testing"

	pnet "piptrade/internal/platform/net"
)

func TestWithRequestAndGetters(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123", "10.1.2.3")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q", got)
	}
	if got := pnet.RemoteIP(ctx); got != "10.1.2.3" {
		t.Fatalf("RemoteIP got %q", got)
	}

	only := pnet.WithRequest(base, "r-only", "")
	if pnet.RequestID(only) != "r-only" || pnet.RemoteIP(only) != "" {
		t.Fatalf("request-only ctx wrong")
	}

	if ctx := pnet.WithRequest(base, "", ""); ctx != base {
		t.Fatalf("expected ctx to be unchanged when both values empty")
	}
	if pnet.RequestID(base) != "" || pnet.RemoteIP(base) != "" {
		t.Fatalf("empty ctx should yield empty getters")
	}
}
