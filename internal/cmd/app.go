package cmd

import (
	"io"
	"os"

	"regkv/internal/registry"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Registry *registry.Registry
	File     string // registry file loaded at start-up and written by mutating commands
	Log      *zap.Logger
	Out      io.Writer
	Err      io.Writer
	JSON     bool // output in JSON format
}

// Save writes the registry back to App.File.
func (a *App) Save() error {
	return a.Registry.Save(a.File)
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	return colorize(a.Out, "\033[32m", s)
}

// WarnColor returns the string wrapped in orange ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	return colorize(a.Out, "\033[38;5;214m", s)
}

// colorize wraps s in the given ANSI code when w is a terminal.
func colorize(w io.Writer, code, s string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return code + s + "\033[0m"
	}
	return s
}
