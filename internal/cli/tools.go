// internal/cli/tools.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scrapebadger/scrapebadger-mcp/mcp/tools"
)

var showSchemas bool

// toolsCmd prints the tool catalog for operators. It needs no credential:
// the catalog is static.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools this server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(os.Stdout, showSchemas)
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&showSchemas, "schemas", false, "include each tool's input schema as JSON")
	rootCmd.AddCommand(toolsCmd)
}

func printCatalog(w io.Writer, withSchemas bool) error {
	nameColor := color.New(color.FgCyan, color.Bold)
	defs := tools.Definitions()
	fmt.Fprintf(w, "%d tools available:\n\n", len(defs))
	for _, def := range defs {
		nameColor.Fprintln(w, def.Name)
		fmt.Fprintf(w, "  %s\n", def.Description)
		if withSchemas {
			schema, err := json.MarshalIndent(def.InputSchema, "  ", "  ")
			if err != nil {
				return fmt.Errorf("encode schema for %s: %w", def.Name, err)
			}
			fmt.Fprintf(w, "  %s\n", schema)
		}
		fmt.Fprintln(w)
	}
	return nil
}
