package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/pdftext"
	"github.com/balanza-dev/balanza/internal/runner"
	"github.com/balanza-dev/balanza/internal/store"
)

func newExtractCommand(configPath *string) *cobra.Command {
	var yes bool
	var clientID string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract statement PDFs into per-client JSON records",
		Long: `Walks every roster client's archive tree, extracts income statement
and balance sheet figures month by month, and rebuilds the per-client
JSON records. Without --yes it processes the first roster client as an
example and asks for confirmation before the full run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if len(cfg.Clients) == 0 {
				return fmt.Errorf("no clients in roster")
			}

			out := cmd.OutOrStdout()
			st := store.NewService(cfg.OutputDir)
			r := runner.New(cfg, st, pdftext.FileReader{}, out)

			if clientID != "" {
				cl, ok := cfg.FindClient(clientID)
				if !ok {
					return fmt.Errorf("unknown client id %q", clientID)
				}
				months, err := r.RunClient(cl)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "done: %d months with data\n", months)
				return nil
			}

			if !yes {
				// Process one example client first, as a dry run the
				// user can inspect before committing to the roster.
				example := cfg.Clients[0]
				fmt.Fprintf(out, "example run: %s\n", example.ID)
				if months, err := r.RunClient(example); err != nil {
					fmt.Fprintf(out, "warning: %s: %v\n", example.ID, err)
				} else {
					fmt.Fprintf(out, "example done: %d months with data\n", months)
				}

				fmt.Fprintf(out, "process all %d clients? [y/N]: ", len(cfg.Clients))
				if !confirm(cmd) {
					fmt.Fprintln(out, "stopped after example")
					return nil
				}
			}

			s := r.RunAll()
			s.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "process the full roster without asking")
	cmd.Flags().StringVar(&clientID, "client", "", "process a single client id")

	return cmd
}

func confirm(cmd *cobra.Command) bool {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s"
}
