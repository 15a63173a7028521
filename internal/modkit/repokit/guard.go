package repokit

import (
	"context"
	"fmt"
)

// MustGuard panics when st reports an unhealthy dependency, for startup only
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if st == nil {
		panic("repokit: nil store")
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
