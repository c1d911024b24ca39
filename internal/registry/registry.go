// Package registry holds the named check handlers a specification can
// reference. Modules register checks by name at startup; the spec-file
// loader resolves references against the registry while building fragment
// groups.
package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// CheckFunc is a registered check handler. The args value is the decoded
// `args` object from the spec file, cty.NilVal when the fragment declared
// none.
type CheckFunc func(ctx context.Context, args cty.Value) (any, error)

// Module is the interface all check modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry maps check names to handlers for a single application instance.
type Registry struct {
	checks map[string]CheckFunc
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{checks: make(map[string]CheckFunc)}
}

// Register adds a named check. Registering the same name twice is a
// programmer error and panics.
func (r *Registry) Register(name string, fn CheckFunc) {
	if _, dup := r.checks[name]; dup {
		panic(fmt.Sprintf("registry: check %q registered twice", name))
	}
	r.checks[name] = fn
}

// Lookup returns the handler for name.
func (r *Registry) Lookup(name string) (CheckFunc, bool) {
	fn, ok := r.checks[name]
	return fn, ok
}

// Names returns the registered check names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
