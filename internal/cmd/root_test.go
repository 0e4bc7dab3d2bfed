package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"regkv/internal/config"
)

// runRoot executes the full command tree with args and returns stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	provider := &AppProvider{Out: &out, Err: &errOut}
	root := newRootCmd(provider)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_SetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.cfg")

	if _, err := runRoot(t, "--file", path, "set", "width", "800", "--type", "int32"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := runRoot(t, "-f", path, "set", "height", "600"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := readFile(t, path); got != "height 600\nwidth 800\n" {
		t.Errorf("file = %q", got)
	}

	out, err := runRoot(t, "--file", path, "get", "width", "--type", "int32")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "800" {
		t.Errorf("get width = %q, want 800", out)
	}
}

func TestRoot_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	t.Setenv(config.EnvFile, path)
	t.Setenv(config.EnvFormat, "")

	if _, err := runRoot(t, "set", "title", "main"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := readFile(t, path); got != "title: main\n" {
		t.Errorf("file = %q, want yaml", got)
	}
}

func TestRoot_EnvJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	t.Setenv(config.EnvJSON, "1")

	out, err := runRoot(t, "--file", path, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.TrimSpace(out) != "{}" {
		t.Errorf("list --json on empty registry = %q, want {}", out)
	}
}

func TestRoot_Spaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("title Main Window\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "--file", path, "get", "title")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "MainWindow" {
		t.Errorf("get title = %q, want legacy concatenation", out)
	}

	out, err = runRoot(t, "--file", path, "--spaced", "get", "title")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "Main Window" {
		t.Errorf("get title --spaced = %q, want %q", out, "Main Window")
	}
}

func TestRoot_UnknownFormat(t *testing.T) {
	_, err := runRoot(t, "--format", "ini", "list")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error = %v, want unknown format", err)
	}
}

func TestRoot_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[section]\nk = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runRoot(t, "--file", path, "list"); err == nil {
		t.Error("expected error loading nested toml")
	}
}

func TestRoot_ConvertIgnoresBrokenFile(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("display:\n  width: 800\n"), 0644); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.toml")
	if err := os.WriteFile(src, []byte("width 800\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "--file", broken, "convert", src, dst)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "Converted 1 entries") {
		t.Errorf("output = %q", out)
	}
	if got := readFile(t, dst); !strings.Contains(got, `width = "800"`) {
		t.Errorf("converted file = %q", got)
	}
}

func TestRoot_SpacedSetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")

	if _, err := runRoot(t, "--file", path, "--spaced", "set", "title", "Main Window"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out, err := runRoot(t, "--file", path, "--spaced", "get", "title")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "Main Window" {
		t.Errorf("get title = %q, want %q", out, "Main Window")
	}
}

func TestRoot_NegativeValueAfterDoubleDash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")

	if _, err := runRoot(t, "--file", path, "set", "offset", "--type", "int32", "--", "-7"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := readFile(t, path); got != "offset -7\n" {
		t.Errorf("file = %q", got)
	}
}
