package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"campusos/internal/modules/campus"
	"campusos/internal/modules/debt"
)

func init() {
	rootCmd.AddCommand(settleCmd)
	settleCmd.Flags().StringArrayP("debt", "d", nil, `Debt as NAME:AMOUNT:DIRECTION, e.g. "Rahul:120:owes_you" (repeatable)`)
	settleCmd.Flags().StringP("reference", "r", debt.DefaultReference, "Name of the party the debts are relative to")
}

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Simplify hostel debts into the fewest payments",
	Long: `Nets every debt against the reference party and prints the payments
that settle all balances. Without --debt the hostel sample debts are used.`,
	Args: cobra.NoArgs,
	RunE: runSettle,
}

func runSettle(cmd *cobra.Command, _ []string) error {
	raw, _ := cmd.Flags().GetStringArray("debt")
	ref, _ := cmd.Flags().GetString("reference")

	debts, err := parseDebts(raw)
	if err != nil {
		return err
	}
	if len(debts) == 0 {
		debts = campus.HostelDebts()
	}
	if err := debt.Validate(debts, ref); err != nil {
		return err
	}

	res := debt.Simplify(debts, ref)
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), res)
	}
	out := cmd.OutOrStdout()
	for _, t := range res.SimplifiedTransactions {
		fmt.Fprintf(out, "%s pays %s ₹%d\n", t.FromPerson, t.ToPerson, t.Amount)
	}
	fmt.Fprintln(out, res.Message)
	return nil
}

func parseDebts(raw []string) ([]debt.Debt, error) {
	debts := make([]debt.Debt, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q is not NAME:AMOUNT:DIRECTION", debt.ErrBadRequest, s)
		}
		amount, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: amount in %q", debt.ErrBadRequest, s)
		}
		debts = append(debts, debt.Debt{
			Name:      strings.TrimSpace(parts[0]),
			Amount:    amount,
			Direction: strings.TrimSpace(parts[2]),
		})
	}
	return debts, nil
}
