package hbetl

import "github.com/nilfoss/hbetl/internal"

// Registry holds the helper, block-helper and partial callbacks a
// Compile call dispatches against. The zero value is not usable — build
// one with NewRegistry, DefaultRegistry or SendgridRegistry.
type Registry struct {
	inner *internal.Registry
}

// NewRegistry builds an empty registry: only the reserved
// "__escaped__"/"__unescaped__" fallbacks are present, no dialect
// helpers. Most callers want DefaultRegistry or SendgridRegistry
// instead; NewRegistry is for building a dialect from scratch.
func NewRegistry(opts ...Option) *Registry {
	c := newRegistryConfig(opts)
	r := &Registry{inner: internal.NewRegistry(c.logger)}
	applyManifest(r, c)
	return r
}

// RegisterHelper registers fn as the callback for a plain (non-block)
// tag named name, replacing any existing registration under that name.
func (r *Registry) RegisterHelper(name string, fn HelperFunc) error {
	return r.inner.RegisterHelper(name, fn)
}

// RegisterBlock registers fn as the callback for a block tag named name.
func (r *Registry) RegisterBlock(name string, fn HelperFunc) error {
	return r.inner.RegisterBlock(name, fn)
}

// RegisterPartial registers a partial named name. body may be a
// HelperFunc for a dynamic partial or a string for a constant one.
func (r *Registry) RegisterPartial(name string, body any) error {
	return r.inner.RegisterPartial(name, body)
}
