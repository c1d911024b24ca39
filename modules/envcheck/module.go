// Package envcheck provides checks over the process environment.
package envcheck

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/specrungo/internal/registry"
	"github.com/vk/specrungo/internal/result"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the environment checks.
func (m *Module) Register(r *registry.Registry) {
	r.Register("env.present", checkPresent)
}

// checkPresent asserts that the named environment variable is set and,
// when `equals` is given, that it holds the expected value.
func checkPresent(ctx context.Context, args cty.Value) (any, error) {
	name := registry.AttrString(args, "name", "")
	if name == "" {
		return nil, fmt.Errorf("env.present: missing 'name' argument")
	}

	value, ok := os.LookupEnv(name)
	if !ok {
		return result.Expectf(false, "environment variable %s is not set", name), nil
	}
	if expected := registry.AttrString(args, "equals", ""); expected != "" {
		return result.Expectf(value == expected, "expected %s=%q, got %q", name, expected, value), nil
	}
	return true, nil
}
