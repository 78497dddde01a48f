package internal

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// HelperFunc is the single callback shape every helper, block-helper and
// partial resolves to. Where spec.md describes a dynamically-typed
// source returning Ok(string), Err(message) or a bare string, Go's
// static (string, error) return already is that one coercion point —
// there is nothing left to normalize at the call boundary.
type HelperFunc func(tag *TagModel) (string, error)

// ConstFunc wraps a literal string as a HelperFunc, used when a partial
// is registered as a plain string body instead of a callback.
func ConstFunc(body string) HelperFunc {
	return func(*TagModel) (string, error) {
		return body, nil
	}
}

// Registry holds the three helper-callback maps a transpile run
// dispatches against: plain helpers, block-helpers, and partials. It is
// safe for concurrent reads once built; the RWMutex exists to let
// callers register helpers incrementally (e.g. from a manifest loader)
// before the first Compile call, in the same shape as the teacher's
// internal/prompty.resolver.registry.go Registry.
type Registry struct {
	mu       sync.RWMutex
	helpers  map[string]HelperFunc
	blocks   map[string]HelperFunc
	partials map[string]HelperFunc
	logger   *zap.Logger
}

// NewRegistry creates an empty registry with the reserved __escaped__
// and __unescaped__ fallbacks wired to plain variable interpolation
// ("<%= @name %>"). The bundled dialects keep these fallbacks; a caller
// can replace them with RegisterHelper.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		helpers:  make(map[string]HelperFunc),
		blocks:   make(map[string]HelperFunc),
		partials: make(map[string]HelperFunc),
		logger:   logger,
	}
	// The __escaped__/__unescaped__ fallbacks must never be absent
	// (spec.md §3); a bare registry gets the plain variable-translation
	// interpolation any dialect would otherwise supply.
	r.helpers[NameEscapedFallback] = escapedFallback(TranslateVarDefault)
	r.helpers[NameUnescapedFallback] = escapedFallback(TranslateVarDefault)
	return r
}

// escapedFallback builds the default __escaped__/__unescaped__ callback:
// translate the bare tag name as a variable path and print it.
func escapedFallback(translate func(string) string) HelperFunc {
	return func(tag *TagModel) (string, error) {
		return "<%= " + translate(tag.Name) + " %>", nil
	}
}

// RegisterHelper stores fn under name in the helpers map. Registration
// is monotone last-write-wins: a later call with the same name replaces
// the earlier one, per spec.md §8.
func (r *Registry) RegisterHelper(name string, fn HelperFunc) error {
	if err := validateHelperName(name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.helpers[name] = fn
	r.logger.Debug("helper registered", zap.String(MetaKeyTag, name))
	return nil
}

// RegisterBlock stores fn under name in the block-helpers map.
func (r *Registry) RegisterBlock(name string, fn HelperFunc) error {
	if err := validateHelperName(name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks[name] = fn
	r.logger.Debug("block-helper registered", zap.String(MetaKeyTag, name))
	return nil
}

// RegisterPartial stores a partial under name. body may be a HelperFunc
// (dynamic partial) or a string (constant partial, wrapped via
// ConstFunc), per spec.md §4.C's lookup_partial wrapping rule.
func (r *Registry) RegisterPartial(name string, body any) error {
	if err := validateHelperName(name); err != nil {
		return err
	}
	var fn HelperFunc
	switch v := body.(type) {
	case HelperFunc:
		fn = v
	case func(*TagModel) (string, error):
		fn = v
	case string:
		fn = ConstFunc(v)
	default:
		return NewInvalidPartialBodyError(name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.partials[name] = fn
	r.logger.Debug("partial registered", zap.String(MetaKeyTag, name))
	return nil
}

// LookupHelper returns the exact-name helper, or the __escaped__
// fallback when name is not registered.
func (r *Registry) LookupHelper(name string) HelperFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.helpers[name]; ok {
		return fn
	}
	return r.helpers[NameEscapedFallback]
}

// LookupUnescaped returns the __unescaped__ fallback.
func (r *Registry) LookupUnescaped() HelperFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.helpers[NameUnescapedFallback]
}

// LookupBlock returns the exact-name block-helper, or a closure that
// fails with HelperNotRegistered when name is absent.
func (r *Registry) LookupBlock(name string) HelperFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.blocks[name]; ok {
		return fn
	}
	return func(*TagModel) (string, error) {
		return StringValueEmpty, NewBlockHelperUnregisteredError(name)
	}
}

// LookupPartial returns the exact-name partial, or a closure that fails
// with PartialNotRegistered when name is absent.
func (r *Registry) LookupPartial(name string) HelperFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.partials[name]; ok {
		return fn
	}
	return func(*TagModel) (string, error) {
		return StringValueEmpty, NewPartialUnregisteredError(name)
	}
}

// PrefixNames returns every registered helper and block-helper name,
// excluding sentinel-marked fallbacks, for HelperPrefixMatcher
// construction. Block names and helper names are merged since either
// kind can appear as a tag name the matcher needs to bind atomically.
func (r *Registry) PrefixNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.helpers)+len(r.blocks))
	for n := range r.helpers {
		if !strings.Contains(n, SentinelToken) {
			names = append(names, n)
		}
	}
	for n := range r.blocks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Logger returns the registry's bound logger, used by NewParser so a
// Parser inherits its registry's logging destination without a second
// constructor argument.
func (r *Registry) Logger() *zap.Logger {
	return r.logger
}

// PrefixMatcher builds a HelperPrefixMatcher over the registry's current
// helper and block-helper names. Callers building a Parser call this
// once per Compile invocation, after all registration is done.
func (r *Registry) PrefixMatcher() *HelperPrefixMatcher {
	return NewHelperPrefixMatcher(r.PrefixNames())
}

// validateHelperName enforces spec.md §3's naming invariant: non-empty,
// and must not start with ".".
func validateHelperName(name string) error {
	if name == StringValueEmpty {
		return NewNameRequiredError(KindEscaped)
	}
	if strings.HasPrefix(name, ".") {
		return NewInvalidHelperNameError(name)
	}
	return nil
}
