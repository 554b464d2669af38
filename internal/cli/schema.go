package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"edenlog/pkg/platform/telemetry"
)

var (
	schemaFormat string
	schemaType   string
)

func init() {
	schemaCmd.Flags().StringVarP(&schemaFormat, "format", "f", "yaml", "output format: yaml or json")
	schemaCmd.Flags().StringVarP(&schemaType, "type", "t", "", "only describe this event type")
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the column layout of every telemetry event type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemas, err := collectSchemas(schemaType)
		if err != nil {
			return err
		}
		return writeSchemas(cmd.OutOrStdout(), schemaFormat, schemas)
	},
}

func collectSchemas(eventType string) ([]telemetry.Schema, error) {
	if eventType != "" {
		e, ok := telemetry.Lookup(eventType)
		if !ok {
			return nil, fmt.Errorf("unknown event type %q", eventType)
		}
		return []telemetry.Schema{telemetry.Describe(e)}, nil
	}

	known := telemetry.Known()
	schemas := make([]telemetry.Schema, 0, len(known))
	for _, e := range known {
		schemas = append(schemas, telemetry.Describe(e))
	}
	return schemas, nil
}

func writeSchemas(w io.Writer, format string, schemas []telemetry.Schema) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schemas); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(schemas); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
