package commands

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/pdftext"
	"github.com/balanza-dev/balanza/internal/runner"
	"github.com/balanza-dev/balanza/internal/store"
)

var monthArgRe = regexp.MustCompile(`^(0?[1-9]|1[0-2])$`)

func newUpdateCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <client-id> <year> <month>",
		Short: "Re-extract a single month into an existing client record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, year, month := args[0], args[1], args[2]

			if len(year) != 4 {
				return fmt.Errorf("year must be four digits, got %q", year)
			}
			if !monthArgRe.MatchString(month) {
				return fmt.Errorf("month must be 01-12, got %q", month)
			}
			if len(month) == 1 {
				month = "0" + month
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			st := store.NewService(cfg.OutputDir)
			r := runner.New(cfg, st, pdftext.FileReader{}, cmd.OutOrStdout())
			return r.UpdateMonth(clientID, year, month)
		},
	}
	return cmd
}
