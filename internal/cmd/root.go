// Package cmd implements the regkv command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"regkv/internal/config"
	"regkv/internal/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	File       string
	Format     string
	Spaced     bool
	JSONOutput bool
	Verbose    bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		JSONOutput: app.JSON,
		Out:        app.Out,
		Err:        app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	resolved, err := config.Resolve(config.Options{
		File:   p.File,
		Format: p.Format,
		Spaced: p.Spaced,
	})
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(p.Verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	reg := registry.New(
		registry.WithCodec(resolved.Codec),
		registry.WithLogger(logger),
	)
	found, err := reg.Load(resolved.File)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Debug("starting with an empty registry", zap.String("path", resolved.File))
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		Registry: reg,
		File:     resolved.File,
		Log:      logger,
		Out:      out,
		Err:      errOut,
		JSON:     p.JSONOutput || config.EnvBool(config.EnvJSON),
	}, nil
}

// newLogger returns a development logger writing to stderr when verbose is
// set, and a no-op logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	err := rootCmd.Execute()
	if provider.app != nil {
		_ = provider.app.Log.Sync()
	}
	return err
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "regkv",
		Short: "Read and edit key/value registry files",
		Long: `regkv reads and edits flat key/value registry files.

The default format is one "key value" pair per line, with ';' starting a
comment. YAML and TOML files holding a single flat table are also supported
and picked by file extension unless --format is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.File, "file", "f", "", "Registry file (default: $"+config.EnvFile+" or "+registry.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&provider.Format, "format", "", "File format: text, yaml or toml (default: by extension)")
	rootCmd.PersistentFlags().BoolVar(&provider.Spaced, "spaced", false, "Join multi-word text values with a space instead of concatenating them")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Log registry activity to stderr")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newUnsetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newConvertCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
