// README: campusctl command tree (fares, routes, debts and chat from the terminal).
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"campusos/internal/modules/fare"
)

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Campus OS fare, route and split-bill tools",
	Long: `campusctl runs the Campus OS calculators locally: railway distances,
student concessions, the three-leg route home and hostel debt settlement.
No server is needed; the same tariff tables as campus-api are used.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("tariff", "", "TOML tariff file layered over the built-in tables")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCmd exposes the command tree for embedding and tests.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func fareEngine(cmd *cobra.Command) (*fare.Engine, error) {
	tables := fare.DefaultTables()
	path, _ := cmd.Flags().GetString("tariff")
	if path != "" {
		t, err := fare.LoadFile(tables, path)
		if err != nil {
			return nil, err
		}
		tables = t
	}
	return fare.NewEngine(tables), nil
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
