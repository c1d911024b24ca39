package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/specrungo/internal/app"
	"github.com/vk/specrungo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a spec-file run in a test.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunSpecTest writes the given spec files to a temporary directory, builds
// an App over them with the provided check modules, runs it, and captures
// the combined report/log output.
func RunSpecTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		SpecPath:  tmpDir,
		LogFormat: "text",
		LogLevel:  "warn",
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	a := app.NewApp(out, cfg, modules...)
	runErr := a.Run(context.Background())

	return &HarnessResult{Output: out.String(), Err: runErr, App: a}
}
