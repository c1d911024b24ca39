package specfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/fragment"
	"github.com/vk/specrungo/internal/registry"
)

// Spec is one loaded specification: its run arguments and the ordered
// fragment groups, ready for the scheduler.
type Spec struct {
	Name      string
	Arguments fragment.Arguments
	Groups    []*fragment.Group
}

// Loader parses HCL specification files against a check registry.
type Loader struct {
	reg *registry.Registry
}

// NewLoader creates a loader resolving check names against reg.
func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{reg: reg}
}

// fileRoot decodes the top-level blocks of any spec file.
type fileRoot struct {
	Specs  []*specBlock `hcl:"spec,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type specBlock struct {
	Name   string        `hcl:"name,label"`
	Config *configBlock  `hcl:"config,block"`
	Groups []*groupBlock `hcl:"group,block"`
}

type groupBlock struct {
	Config *configBlock `hcl:"config,block"`
	// Remain carries the fragment blocks; they are walked manually so
	// that interleaved example/step/action/text blocks keep their
	// declaration order.
	Remain hcl.Body `hcl:",remain"`
}

// Load discovers every .hcl file under the given paths, parses them, and
// returns the declared specifications in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Spec, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Spec loader started.", "path_count", len(paths))

	files, err := findSpecFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl spec files found under %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered spec files.", "count", len(files))

	parser := hclparse.NewParser()
	var specs []*Spec
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse spec file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode spec file %s: %w", file, diags)
		}

		for _, block := range root.Specs {
			spec, err := l.translateSpec(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			specs = append(specs, spec)
		}
	}

	logger.Debug("Spec loading complete.", "specs", len(specs))
	return specs, nil
}

// findSpecFiles walks all given paths and returns a flat, de-duplicated
// list of .hcl files. A path may be a single file or a directory.
func findSpecFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			all = append(all, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("spec path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return all, nil
}
