package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPlacement(t *testing.T) {
	assert.Equal(t, PlaceOnPool, KindExample.Placement())
	assert.Equal(t, PlaceOnPool, KindAction.Placement())
	assert.Equal(t, PlaceInlineAfterBarrier, KindStep.Placement())
	assert.Equal(t, PlaceInlineAfterBarrier, KindSpecEnd.Placement())
	assert.Equal(t, PlaceInline, KindText.Placement())
}

func TestAsStep(t *testing.T) {
	step := &Fragment{Name: "setup", Kind: KindStep, StopOnFail: true}

	t.Run("a step is itself", func(t *testing.T) {
		assert.Same(t, step, step.AsStep())
	})

	t.Run("a spec end wrapping a step is that step", func(t *testing.T) {
		end := &Fragment{Name: "end", Kind: KindSpecEnd, Wraps: step}
		assert.Same(t, step, end.AsStep())
	})

	t.Run("a bare spec end is not a step", func(t *testing.T) {
		end := &Fragment{Name: "end", Kind: KindSpecEnd}
		assert.Nil(t, end.AsStep())
	})

	t.Run("an example is not a step", func(t *testing.T) {
		ex := &Fragment{Name: "ex", Kind: KindExample}
		assert.Nil(t, ex.AsStep())
	})
}

func TestArgumentsMerge(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }

	t.Run("nil override keeps the defaults", func(t *testing.T) {
		args := Arguments{Sequential: true, ThreadsNb: 3}
		assert.Equal(t, args, args.Merge(nil))
	})

	t.Run("set fields win, unset fields stay", func(t *testing.T) {
		args := Arguments{Sequential: true, StopOnFail: true, ThreadsNb: 3}
		merged := args.Merge(&Overrides{
			Sequential: boolPtr(false),
			Random:     boolPtr(true),
			ThreadsNb:  intPtr(8),
		})

		assert.False(t, merged.Sequential)
		assert.True(t, merged.Random)
		assert.True(t, merged.StopOnFail, "untouched field keeps the run default")
		assert.Equal(t, 8, merged.ThreadsNb)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		args := Arguments{Sequential: true}
		_ = args.Merge(&Overrides{Sequential: boolPtr(false)})
		assert.True(t, args.Sequential)
	})
}
