package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/specrungo/internal/fragment"
)

func resolved(name string, kind fragment.Kind, out fragment.Outcome) *fragment.Executing {
	return fragment.Resolved(&fragment.Fragment{Name: name, Kind: kind}, out)
}

func TestRender(t *testing.T) {
	t.Run("mixed outcomes", func(t *testing.T) {
		execs := []*fragment.Executing{
			resolved("title", fragment.KindText, fragment.Success()),
			resolved("passes", fragment.KindExample, fragment.Success()),
			resolved("asserts", fragment.KindExample, fragment.AssertionFailure("expected 200, got 503")),
			resolved("errors", fragment.KindExample, fragment.ErrorFailure(errors.New("connection refused"))),
			resolved("skipped", fragment.KindExample, fragment.Skipped()),
			resolved("end-marker", fragment.KindSpecEnd, fragment.Success()),
		}

		var buf bytes.Buffer
		sum := Render(&buf, "suite", execs)

		assert.Equal(t, Summary{Examples: 4, Failures: 2, Skipped: 1}, sum)
		assert.True(t, sum.Failed())

		got := buf.String()
		assert.True(t, strings.HasPrefix(got, "suite\n"))
		assert.Contains(t, got, "-- title")
		assert.Contains(t, got, "✅ passes")
		assert.Contains(t, got, "❌ asserts: expected 200, got 503")
		assert.Contains(t, got, "❌ errors: error: connection refused")
		assert.Contains(t, got, "⏭️ skipped (skipped)")
		assert.Contains(t, got, "4 examples, 2 failures, 1 skipped")
		assert.NotContains(t, got, "end-marker", "the end-of-spec marker renders nothing")
	})

	t.Run("clean run", func(t *testing.T) {
		execs := []*fragment.Executing{
			resolved("only", fragment.KindExample, fragment.Success()),
		}

		var buf bytes.Buffer
		sum := Render(&buf, "clean", execs)

		assert.Equal(t, Summary{Examples: 1}, sum)
		assert.False(t, sum.Failed())
		assert.Contains(t, buf.String(), "1 examples, 0 failures, 0 skipped")
	})

	t.Run("awaits deferred handles in order", func(t *testing.T) {
		var order []string
		deferred := func(name string) *fragment.Executing {
			return fragment.Deferred(&fragment.Fragment{Name: name, Kind: fragment.KindExample},
				func() fragment.Outcome {
					order = append(order, name)
					return fragment.Success()
				})
		}

		var buf bytes.Buffer
		Render(&buf, "lazy", []*fragment.Executing{deferred("a"), deferred("b"), deferred("c")})

		assert.Equal(t, []string{"a", "b", "c"}, order)
	})
}
