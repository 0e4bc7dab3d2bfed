package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newListCmd creates the "list" command.
func newListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registry values",
		Long: `List all key/value pairs, sorted by key.

Examples:
  regkv list
  regkv list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(app.Registry.All())
			}

			all := app.Registry.All()
			if len(all) == 0 {
				fmt.Fprintln(app.Out, "No values set")
				return nil
			}

			fmt.Fprintf(app.Out, "Registry %s:\n", app.File)
			for _, k := range sortedKeys(all) {
				fmt.Fprintf(app.Out, "  %s = %s\n", k, all[k])
			}
			return nil
		},
	}

	return cmd
}

// sortedKeys returns the sorted keys of a map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
