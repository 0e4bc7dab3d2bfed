package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestSet_StringSaves(t *testing.T) {
	app, out := setupTestApp(t)

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"title", "main"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "Set title = main" {
		t.Errorf("output = %q, want %q", got, "Set title = main")
	}
	if got := readFile(t, app.File); got != "title main\n" {
		t.Errorf("saved file = %q, want %q", got, "title main\n")
	}
}

func TestSet_TypedCanonicalText(t *testing.T) {
	tests := []struct {
		typ  string
		in   string
		want string
	}{
		{"int32", "+42", "42"},
		{"int32", "-7", "-7"},
		{"float32", "1.25", "1.250000"},
		{"float64", "-0.5", "-0.500000"},
		{"float64", "2e3", "2000.000000"},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.in, func(t *testing.T) {
			app, _ := setupTestApp(t)

			cmd := newSetCmd(NewTestProvider(app))
			cmd.SetArgs([]string{"k", "--type", tt.typ, "--", tt.in})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("set failed: %v", err)
			}
			if got := app.Registry.GetString("k", ""); got != tt.want {
				t.Errorf("stored %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSet_TypedRejectsMalformed(t *testing.T) {
	tests := []struct {
		typ string
		in  string
	}{
		{"int32", "12px"},
		{"int32", "3000000000"},
		{"float32", "abc"},
		{"float64", ""},
	}
	for _, tt := range tests {
		app, _ := setupTestApp(t)

		cmd := newSetCmd(NewTestProvider(app))
		cmd.SetArgs([]string{"k", tt.in, "--type", tt.typ})
		if err := cmd.Execute(); err == nil {
			t.Errorf("set k %q --type %s: expected error", tt.in, tt.typ)
		}
		if app.Registry.Has("k") {
			t.Errorf("set k %q --type %s stored a value despite the error", tt.in, tt.typ)
		}
	}
}

func TestSet_UnencodableKey(t *testing.T) {
	app, _ := setupTestApp(t)

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"two words", "x"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "cannot be encoded") {
		t.Errorf("set error = %v, want encode error", err)
	}
}

func TestSet_JSON(t *testing.T) {
	app, out := setupTestApp(t)
	app.JSON = true

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"width", "800", "--type", "int32"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["key"] != "width" || result["value"] != "800" {
		t.Errorf("result = %v, want width=800", result)
	}
}

func TestSet_NegativeNeedsDoubleDash(t *testing.T) {
	app, _ := setupTestApp(t)

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"k", "-7", "--type", "int32"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected -7 without -- to be rejected as a flag")
	}
	if app.Registry.Has("k") {
		t.Error("value stored despite the flag error")
	}
}

func TestSet_MultiWordRefusedWithoutSpaced(t *testing.T) {
	app, _ := setupTestApp(t)

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"title", "Main Window"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "would read back as") {
		t.Fatalf("set error = %v, want read-back error", err)
	}
	if _, statErr := os.Stat(app.File); !os.IsNotExist(statErr) {
		t.Error("registry file written despite the error")
	}
}
