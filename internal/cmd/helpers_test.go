package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"regkv/internal/registry"

	"go.uber.org/zap"
)

// setupTestApp creates an App backed by an empty registry whose file lives
// in a fresh temp directory.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := &App{
		Registry: registry.New(),
		File:     filepath.Join(t.TempDir(), "config.txt"),
		Log:      zap.NewNop(),
		Out:      &out,
		Err:      &bytes.Buffer{},
	}
	return app, &out
}

// seedRegistry stores the given pairs as strings.
func seedRegistry(t *testing.T, app *App, pairs map[string]string) {
	t.Helper()
	for k, v := range pairs {
		app.Registry.SetString(k, v)
	}
}

// readFile returns the contents of path, failing the test on error.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
