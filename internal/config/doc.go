// Package config defines the format-agnostic sheet model for the
// application, along with the Loader interface that produces it.
//
// The `config.Model` is the single source of truth for the `app` package:
// it lists every cell binding as an already-built formula node. Concrete
// Loader implementations, such as the one for HCL, live in separate packages.
package config
