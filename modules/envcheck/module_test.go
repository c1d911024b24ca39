package envcheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/specrungo/internal/fragment"
	"github.com/vk/specrungo/internal/registry"
	"github.com/vk/specrungo/internal/result"
	"github.com/zclconf/go-cty/cty"
)

func args(kv map[string]cty.Value) cty.Value {
	return cty.ObjectVal(kv)
}

func TestCheckPresent(t *testing.T) {
	ctx := context.Background()

	t.Run("set variable passes", func(t *testing.T) {
		t.Setenv("SPECRUN_TEST_VAR", "anything")
		v, err := checkPresent(ctx, args(map[string]cty.Value{
			"name": cty.StringVal("SPECRUN_TEST_VAR"),
		}))
		require.NoError(t, err)
		assert.True(t, result.AsResult(v, err).IsOk())
	})

	t.Run("unset variable fails the assertion", func(t *testing.T) {
		v, err := checkPresent(ctx, args(map[string]cty.Value{
			"name": cty.StringVal("SPECRUN_DEFINITELY_UNSET"),
		}))
		require.NoError(t, err)
		out := result.AsResult(v, err)
		assert.Equal(t, fragment.FailureAssertion, out.Failure)
		assert.Contains(t, out.Message, "SPECRUN_DEFINITELY_UNSET")
	})

	t.Run("equals compares the value", func(t *testing.T) {
		t.Setenv("SPECRUN_TEST_VAR", "expected")

		v, err := checkPresent(ctx, args(map[string]cty.Value{
			"name":   cty.StringVal("SPECRUN_TEST_VAR"),
			"equals": cty.StringVal("expected"),
		}))
		require.NoError(t, err)
		assert.True(t, result.AsResult(v, err).IsOk())

		v, err = checkPresent(ctx, args(map[string]cty.Value{
			"name":   cty.StringVal("SPECRUN_TEST_VAR"),
			"equals": cty.StringVal("other"),
		}))
		require.NoError(t, err)
		out := result.AsResult(v, err)
		assert.Equal(t, fragment.FailureAssertion, out.Failure)
	})

	t.Run("missing name argument errors", func(t *testing.T) {
		_, err := checkPresent(ctx, cty.NilVal)
		assert.ErrorContains(t, err, "missing 'name'")
	})
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	_, ok := r.Lookup("env.present")
	assert.True(t, ok)
}
