// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the keep-page CLI, which keeps a single
// page of every PDF it is given.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-tools/internal/cliconfig"
	"github.com/pdiddy/pdf-tools/internal/logging"
	"github.com/pdiddy/pdf-tools/internal/pagecut"
	"github.com/pdiddy/pdf-tools/internal/pdfdoc"
	"github.com/pdiddy/pdf-tools/internal/report"
	"github.com/pdiddy/pdf-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the keep-page command.
var rootCmd = &cobra.Command{
	Use:   "keep-page <page> <pdf-or-folder> [<pdf-or-folder>...]",
	Short: "Keep a single page of PDF files",
	Long: `keep-page writes, next to every given PDF, a copy that holds only the
requested page. The copy of scan.pdf for page 9 is scan_Seite9.pdf.

Folder arguments are expanded to the PDFs they contain (not recursively).
Documents with fewer pages than requested are skipped; unreadable documents
are reported and do not stop the batch.`,
	Args: cobra.MinimumNArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return cliconfig.Load(viper.GetViper(), cfgFile, cmd.ErrOrStderr())
	},
	RunE: runKeepPage,
}

func runKeepPage(cmd *cobra.Command, args []string) error {
	page, err := parsePage(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	cfg := types.PageConfig{
		OutputConfig: types.OutputConfig{
			Verbose:    viper.GetBool("verbose"),
			ReportPath: viper.GetString("report"),
		},
		Page:    page,
		Targets: args[1:],
	}

	logger := logging.New(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck

	pdfdoc.DisableConfigDir()
	p := &pagecut.Processor{
		Extractor: pdfdoc.New(),
		Logger:    logger,
		Out:       cmd.OutOrStdout(),
	}
	result := p.ProcessTargets(cfg.Targets, cfg.Page)

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, report.New("keep-page", result.Outcomes)); err != nil {
			return err
		}
		logger.Debugw("report written", "path", cfg.ReportPath)
	}
	return nil
}

// parsePage converts the page argument to a 1-based page number.
func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid page number %q: must be a positive integer", s)
	}
	return n, nil
}

func init() {
	rootCmd.Flags().String("config", "", "config file (default: ./pdf-tools.yaml or ~/.config/pdf-tools/pdf-tools.yaml)")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.Flags().String("report", "", "write outcomes to this file (YAML, or JSON for .json)")

	cobra.CheckErr(cliconfig.BindFlags(viper.GetViper(), rootCmd.Flags(), "verbose", "report"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
