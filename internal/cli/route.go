package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusos/internal/modules/fare"
	"campusos/internal/modules/route"
)

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.Flags().StringP("category", "k", fare.DefaultCategory, "Concession category for the train leg")
}

var routeCmd = &cobra.Command{
	Use:   "route FROM TO",
	Short: "Plan the hostel to home route with concession pricing",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	e, err := fareEngine(cmd)
	if err != nil {
		return err
	}
	category, _ := cmd.Flags().GetString("category")

	it := route.NewComposer(e, route.DefaultTables()).Calculate(args[0], args[1], category)
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), it)
	}
	out := cmd.OutOrStdout()
	for i, s := range it.Steps {
		fmt.Fprintf(out, "%d. %s %s", i+1, s.Icon, s.FromLocation)
		if s.ToLocation != "" {
			fmt.Fprintf(out, " → %s", s.ToLocation)
		}
		fmt.Fprintf(out, "  %s  %s\n", s.Price, s.Detail)
	}
	fmt.Fprintf(out, "Total: ₹%d (was ₹%d). %s\n", it.TotalDiscounted, it.TotalOriginal, it.SavingsText)
	return nil
}
