package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/config"
)

func newInitCommand() *cobra.Command {
	var sourceDir string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter balanza.yaml and create the output directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, sourceDir, outputDir)
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source-dir", "archivo", "root of the client PDF archive")
	cmd.Flags().StringVar(&outputDir, "output-dir", filepath.Join("public", "data", "clients"), "directory for the per-client JSON records")

	return cmd
}

func runInit(cmd *cobra.Command, dir, sourceDir, outputDir string) error {
	cfg := config.Default(sourceDir, outputDir)

	path := filepath.Join(dir, "balanza.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	for _, d := range []string{sourceDir, outputDir, cfg.LogDir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized balanza project at %s\n", dir)
	fmt.Fprintln(cmd.OutOrStdout(), "edit balanza.yaml to fill in the client roster")
	return nil
}
