package cmd

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var (
		typeName string
		def      string
	)

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a registry value",
		Long: `Get the value stored under a key.

Without --default, prints "key (not set)" for a missing key. With
--default, a missing key prints the default instead. --type reads the
value through the matching typed accessor: malformed numbers read as
their leading numeric part, or 0.

Examples:
  regkv get title
  regkv get width --type int32 --default 640
  regkv get gamma --type float64`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			typ, err := parseValueType(typeName)
			if err != nil {
				return err
			}

			key := args[0]
			found := app.Registry.Has(key)
			hasDefault := cmd.Flags().Changed("default")

			if !found && !hasDefault {
				if app.JSON {
					return json.NewEncoder(app.Out).Encode(map[string]any{
						"key":   key,
						"value": nil,
						"found": false,
					})
				}
				fmt.Fprintf(app.Out, "%s (not set)\n", key)
				return nil
			}

			value, err := readValue(app.Registry, key, typ, def)
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"key":   key,
					"value": jsonValue(value),
					"found": found,
				})
			}

			fmt.Fprintln(app.Out, formatValue(value))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", string(typeString), "Value type: string, int32, float32 or float64")
	cmd.Flags().StringVarP(&def, "default", "d", "", "Value to print when the key is missing")

	return cmd
}

// jsonValue replaces floats JSON cannot represent with their text form.
func jsonValue(v any) any {
	var f float64
	switch x := v.(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return v
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatValue(v)
	}
	return v
}
