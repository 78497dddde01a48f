package hbetl

import "go.uber.org/zap"

// Option configures a Registry at construction time.
type Option func(*registryConfig)

type registryConfig struct {
	logger   *zap.Logger
	manifest *Manifest
}

// WithLogger attaches a structured logger to a registry. Debug-level
// logs are emitted on tag dispatch and registration; nothing is logged
// by default (zap.NewNop()).
func WithLogger(logger *zap.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithManifest applies m's partials and constant helpers to the
// registry immediately after construction.
func WithManifest(m Manifest) Option {
	return func(c *registryConfig) {
		c.manifest = &m
	}
}

func newRegistryConfig(opts []Option) *registryConfig {
	c := &registryConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// applyManifest wires c's manifest (if any) into r, panicking on error
// since a malformed manifest supplied via an Option is a startup-time
// programmer error, not a runtime condition callers should recover from.
func applyManifest(r *Registry, c *registryConfig) {
	if c.manifest == nil {
		return
	}
	if err := c.manifest.Apply(r); err != nil {
		panic(err)
	}
}
