package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"regkv/internal/codec"
	"regkv/internal/config"
	"regkv/internal/registry"

	"github.com/spf13/cobra"
)

// newConvertCmd creates the "convert" command.
// convert works on its own two files, so it never loads the --file registry.
func newConvertCmd(provider *AppProvider) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Rewrite a registry file in another format",
		Long: `Load a registry file and save its entries to another file.

Formats are picked from the file extensions unless --from or --to is
given. The destination is replaced atomically. The --file registry is
not read.

Examples:
  regkv convert config.txt config.yaml
  regkv convert settings.toml settings.cfg --to text --spaced`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := provider.Out
			if out == nil {
				out = os.Stdout
			}
			logger, err := newLogger(provider.Verbose)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			srcPath, dstPath := args[0], args[1]
			srcCodec, err := pickCodec(srcPath, from, provider.Spaced)
			if err != nil {
				return err
			}
			dstCodec, err := pickCodec(dstPath, to, provider.Spaced)
			if err != nil {
				return err
			}

			src := registry.New(registry.WithCodec(srcCodec), registry.WithLogger(logger))
			found, err := src.Load(srcPath)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("source file %s not found", srcPath)
			}

			dst := registry.New(registry.WithCodec(dstCodec), registry.WithLogger(logger))
			for k, v := range src.All() {
				dst.SetString(k, v)
			}
			if err := dst.Save(dstPath); err != nil {
				return err
			}

			if provider.JSONOutput || config.EnvBool(config.EnvJSON) {
				return json.NewEncoder(out).Encode(map[string]any{
					"source":      srcPath,
					"destination": dstPath,
					"from":        srcCodec.Name(),
					"to":          dstCodec.Name(),
					"entries":     dst.Len(),
				})
			}

			fmt.Fprintf(out, "%s %d entries from %s (%s) to %s (%s)\n",
				colorize(out, "\033[32m", "Converted"), dst.Len(), srcPath, srcCodec.Name(), dstPath, dstCodec.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source format (default: by extension)")
	cmd.Flags().StringVar(&to, "to", "", "Destination format (default: by extension)")

	return cmd
}

// pickCodec returns the codec named by format, or the one implied by
// path's extension when format is empty. spaced switches the text format to
// joining words with a space.
func pickCodec(path, format string, spaced bool) (codec.Codec, error) {
	c := codec.ForPath(path)
	if format != "" {
		var err error
		if c, err = codec.ForName(format); err != nil {
			return nil, err
		}
	}
	if _, ok := c.(codec.Text); ok && spaced {
		c = codec.Text{Separator: " "}
	}
	return c, nil
}
