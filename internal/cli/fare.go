package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusos/internal/modules/fare"
)

func init() {
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(concessionCmd)

	concessionCmd.Flags().StringP("class", "c", fare.DefaultClass, "Travel class (2S or SL)")
	concessionCmd.Flags().StringP("category", "k", fare.DefaultCategory, "Concession category (General, SC/ST, PH)")
}

var distanceCmd = &cobra.Command{
	Use:   "distance FROM TO",
	Short: "Show the railway distance between two stations",
	Args:  cobra.ExactArgs(2),
	RunE:  runDistance,
}

func runDistance(cmd *cobra.Command, args []string) error {
	e, err := fareEngine(cmd)
	if err != nil {
		return err
	}
	from, to := args[0], args[1]
	km := e.Distance(from, to)
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"from_station": from,
			"to_station":   to,
			"distance_km":  km,
		})
	}
	note := ""
	if !e.Known(from, to) {
		note = " (not listed, fallback distance)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s → %s: %d km%s\n", from, to, km, note)
	return nil
}

var concessionCmd = &cobra.Command{
	Use:   "concession FROM TO",
	Short: "Price a student concession ticket",
	Args:  cobra.ExactArgs(2),
	RunE:  runConcession,
}

func runConcession(cmd *cobra.Command, args []string) error {
	e, err := fareEngine(cmd)
	if err != nil {
		return err
	}
	class, _ := cmd.Flags().GetString("class")
	category, _ := cmd.Flags().GetString("category")

	r := e.CalculateConcession(args[0], args[1], class, category)
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), r)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s → %s (%s, %s)\n", r.FromStation, r.ToStation, r.TravelClass, r.Category)
	fmt.Fprintf(out, "Original fare:   ₹%d\n", r.OriginalFare)
	fmt.Fprintf(out, "Concession fare: ₹%d\n", r.ConcessionFare)
	fmt.Fprintf(out, "You save:        ₹%d (%d%%)\n", r.Savings, r.SavingsPct)
	for _, s := range r.Steps {
		fmt.Fprintln(out, "  "+s)
	}
	return nil
}
