package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/model"
	"github.com/balanza-dev/balanza/internal/store"
)

func newVerifyCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report extraction completeness across all client records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := store.NewService(cfg.OutputDir)
			ids, err := st.List()
			if err != nil {
				return err
			}

			var withData, empty []string
			totalMonths := 0
			for _, id := range ids {
				rec, err := st.Load(id)
				if err != nil {
					fmt.Fprintf(out, "warning: %s: %v\n", id, err)
					empty = append(empty, id)
					continue
				}
				months := reportClient(out, rec)
				if months > 0 {
					withData = append(withData, id)
					totalMonths += months
				} else {
					empty = append(empty, id)
				}
			}

			fmt.Fprintln(out, "----------------------------------------")
			fmt.Fprintf(out, "clients with data: %d (%s)\n", len(withData), strings.Join(withData, ", "))
			fmt.Fprintf(out, "clients empty:     %d (%s)\n", len(empty), strings.Join(empty, ", "))
			fmt.Fprintf(out, "months processed:  %d\n", totalMonths)
			return nil
		},
	}
	return cmd
}

// reportClient prints one client's coverage and returns the number of
// extracted months.
func reportClient(out io.Writer, rec *model.ClientRecord) int {
	fmt.Fprintf(out, "%s (%s)\n", rec.ClientName, rec.ClientID)

	years := make([]string, 0, len(rec.Years))
	for y := range rec.Years {
		years = append(years, y)
	}
	sort.Strings(years)

	total := 0
	for _, year := range years {
		yr := rec.Years[year]
		if len(yr.IncomeStatementPeriod) == 0 && len(yr.BalanceSheet) == 0 {
			continue
		}
		total += len(yr.IncomeStatementPeriod)
		fmt.Fprintf(out, "  %s: %d months\n", year, len(yr.IncomeStatementPeriod))

		allZero := true
		for _, p := range yr.IncomeStatementPeriod {
			if p.HasData() {
				allZero = false
				break
			}
		}
		if allZero && len(yr.IncomeStatementPeriod) > 0 {
			fmt.Fprintf(out, "    all extracted values are zero\n")
			continue
		}

		// Show the first few months as a sanity sample.
		for i, p := range yr.IncomeStatementPeriod {
			if i == 3 {
				fmt.Fprintf(out, "    ... %d more months\n", len(yr.IncomeStatementPeriod)-3)
				break
			}
			fmt.Fprintf(out, "    %s: ingresos=%s gastos=%s\n", p.Month, p.Revenue.StringFixed(0), p.OperatingExpense.StringFixed(0))
		}
	}

	if total == 0 {
		fmt.Fprintln(out, "  no extracted data")
	}
	return total
}
