package hbetl

import "github.com/nilfoss/hbetl/internal"

// DefaultRegistry builds the Base dialect: helpers "else", "log",
// "@index", "@key" and block-helpers "if", "each", "foreach", "raw",
// "unless", per spec.md §4.G.
func DefaultRegistry(opts ...Option) *Registry {
	c := newRegistryConfig(opts)
	r := &Registry{inner: internal.BaseRegistry(c.logger)}
	applyManifest(r, c)
	return r
}

// SendgridRegistry builds the Sendgrid dialect: the comparator helper
// family, their chained "else <comparator>" siblings, "insert", and the
// matching block-helpers, per spec.md §4.G.
func SendgridRegistry(opts ...Option) *Registry {
	c := newRegistryConfig(opts)
	r := &Registry{inner: internal.SendgridRegistry(c.logger)}
	applyManifest(r, c)
	return r
}
