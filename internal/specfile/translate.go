package specfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/fragment"
	"github.com/zclconf/go-cty/cty"
)

// configBlock is the shared shape of the run-level and group-level config
// blocks. Pointer fields distinguish "unset" from "false".
type configBlock struct {
	Sequential *bool `hcl:"sequential,optional"`
	Random     *bool `hcl:"random,optional"`
	StopOnFail *bool `hcl:"stop_on_fail,optional"`
	StopOnSkip *bool `hcl:"stop_on_skip,optional"`
	SkipAll    *bool `hcl:"skip_all,optional"`
	Workers    *int  `hcl:"workers,optional"`
}

func (c *configBlock) overrides() *fragment.Overrides {
	if c == nil {
		return nil
	}
	return &fragment.Overrides{
		Sequential: c.Sequential,
		Random:     c.Random,
		StopOnFail: c.StopOnFail,
		StopOnSkip: c.StopOnSkip,
		SkipAll:    c.SkipAll,
		ThreadsNb:  c.Workers,
	}
}

// fragAttrs is the body of an example/step/action block.
type fragAttrs struct {
	Check      string    `hcl:"check,optional"`
	Args       cty.Value `hcl:"args,optional"`
	StopOnFail bool      `hcl:"stop_on_fail,optional"`
}

// fragmentSchema lists the fragment block types a group may contain, in
// any interleaving.
var fragmentSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "example", LabelNames: []string{"name"}},
		{Type: "step", LabelNames: []string{"name"}},
		{Type: "action", LabelNames: []string{"name"}},
		{Type: "text", LabelNames: []string{"name"}},
	},
}

func (l *Loader) translateSpec(ctx context.Context, block *specBlock) (*Spec, error) {
	logger := ctxlog.FromContext(ctx).With("spec", block.Name)

	args := fragment.Arguments{}.Merge(block.Config.overrides())

	var groups []*fragment.Group
	for i, gb := range block.Groups {
		group, err := l.translateGroup(gb, i)
		if err != nil {
			return nil, fmt.Errorf("spec %q group %d: %w", block.Name, i, err)
		}
		groups = append(groups, group)
	}

	// The spec always ends on a synchronization point of its own.
	groups = append(groups, &fragment.Group{Fragments: []*fragment.Fragment{{
		Name: block.Name,
		Kind: fragment.KindSpecEnd,
		Seq:  len(groups),
	}}})

	logger.Debug("Spec translated.", "groups", len(groups))
	return &Spec{Name: block.Name, Arguments: args, Groups: groups}, nil
}

func (l *Loader) translateGroup(gb *groupBlock, seq int) (*fragment.Group, error) {
	content, diags := gb.Remain.Content(fragmentSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	group := &fragment.Group{Overrides: gb.Config.overrides()}
	for _, block := range content.Blocks {
		frag, err := l.translateFragment(block, seq)
		if err != nil {
			return nil, err
		}
		group.Fragments = append(group.Fragments, frag)
	}
	return group, nil
}

func (l *Loader) translateFragment(block *hcl.Block, seq int) (*fragment.Fragment, error) {
	name := block.Labels[0]

	var kind fragment.Kind
	switch block.Type {
	case "example":
		kind = fragment.KindExample
	case "step":
		kind = fragment.KindStep
	case "action":
		kind = fragment.KindAction
	default:
		kind = fragment.KindText
	}

	var attrs fragAttrs
	if diags := gohcl.DecodeBody(block.Body, nil, &attrs); diags.HasErrors() {
		return nil, fmt.Errorf("%s %q: %w", block.Type, name, diags)
	}

	frag := &fragment.Fragment{
		Name:       name,
		Kind:       kind,
		StopOnFail: attrs.StopOnFail,
		Seq:        seq,
	}

	if kind == fragment.KindText {
		if attrs.Check != "" {
			return nil, fmt.Errorf("text %q: text markers carry no check", name)
		}
		return frag, nil
	}

	if attrs.Check == "" {
		return nil, fmt.Errorf("%s %q: missing check reference", block.Type, name)
	}
	fn, ok := l.reg.Lookup(attrs.Check)
	if !ok {
		return nil, fmt.Errorf("%s %q: unknown check %q (registered: %s)",
			block.Type, name, attrs.Check, strings.Join(l.reg.Names(), ", "))
	}

	checkArgs := attrs.Args
	frag.Check = func(ctx context.Context) (any, error) {
		return fn(ctx, checkArgs)
	}
	return frag, nil
}
