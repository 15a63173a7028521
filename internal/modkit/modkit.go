package modkit

import "piptrade/internal/modkit/module"

// Module is the surface API modules expose to the composition root
type Module = module.Module
