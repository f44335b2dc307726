package config

import "context"

// Loader is the interface for a format-specific sheet loader.
type Loader interface {
	// Load reads every sheet file found under paths and translates the
	// bindings into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
