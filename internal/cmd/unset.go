package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newUnsetCmd creates the "unset" command.
func newUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a registry value",
		Long: `Remove a key and save the registry file.

The key is removed regardless of whether it was set.

Examples:
  regkv unset title`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			existed := app.Registry.Unset(key)
			if err := app.Save(); err != nil {
				return fmt.Errorf("unsetting %s: %w", key, err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"key":     key,
					"existed": existed,
				})
			}

			if !existed {
				fmt.Fprintf(app.Out, "%s %s (was not set)\n", app.WarnColor("Unset"), key)
				return nil
			}
			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Unset"), key)
			return nil
		},
	}

	return cmd
}
