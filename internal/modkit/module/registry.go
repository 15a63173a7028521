package module

import (
	"maps"
	"slices"
	"sync"
)

// the registry records which modules the composition root mounted
var (
	mu  sync.RWMutex
	reg = map[string]struct{}{}
)

// Register records name as mounted
func Register(name string) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = struct{}{}
}

// Names lists registered modules, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(reg))
}

// Reset empties the registry, tests only
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
