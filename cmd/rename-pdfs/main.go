// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rename-pdfs CLI, which renames the
// PDFs of a folder after the subject line on their first page.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-tools/internal/cliconfig"
	"github.com/pdiddy/pdf-tools/internal/logging"
	"github.com/pdiddy/pdf-tools/internal/pdfdoc"
	"github.com/pdiddy/pdf-tools/internal/rename"
	"github.com/pdiddy/pdf-tools/internal/report"
	"github.com/pdiddy/pdf-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the rename-pdfs command.
var rootCmd = &cobra.Command{
	Use:   "rename-pdfs [folder]",
	Short: "Rename PDFs after the subject line on their first page",
	Long: `rename-pdfs renames every PDF in a folder (default: the current directory)
after the first meaningful line of text on its first page.

Lines containing ":" (letterhead fields such as "Tel.:") or "@" (e-mail
addresses) are ignored. The chosen line is turned into a file name made of
letters, digits, "_" and "-"; umlauts become ae, oe, ue and ß becomes ss.
If the name is taken, _1, _2, ... is appended. Files without a usable line
are left alone.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return cliconfig.Load(viper.GetViper(), cfgFile, cmd.ErrOrStderr())
	},
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	folder := "."
	if len(args) == 1 {
		folder = args[0]
	}
	if err := checkFolder(folder); err != nil {
		return err
	}

	cfg := types.RenameConfig{
		OutputConfig: types.OutputConfig{
			Verbose:    viper.GetBool("verbose"),
			ReportPath: viper.GetString("report"),
		},
		Folder: folder,
		DryRun: viper.GetBool("dry-run"),
	}

	logger := logging.New(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck

	pdfdoc.DisableConfigDir()
	r := &rename.Renamer{
		Source: pdfdoc.New(),
		Logger: logger,
		Out:    cmd.OutOrStdout(),
	}
	result, err := r.ProcessFolder(cfg.Folder, rename.Options{DryRun: cfg.DryRun})
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		rep := report.New("rename-pdfs", result.Outcomes)
		rep.DryRun = cfg.DryRun
		if err := report.Write(cfg.ReportPath, rep); err != nil {
			return err
		}
		logger.Debugw("report written", "path", cfg.ReportPath)
	}
	return nil
}

// checkFolder returns an error unless path names an existing directory.
func checkFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a valid folder", path)
	}
	return nil
}

func init() {
	rootCmd.Flags().String("config", "", "config file (default: ./pdf-tools.yaml or ~/.config/pdf-tools/pdf-tools.yaml)")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.Flags().String("report", "", "write outcomes to this file (YAML, or JSON for .json)")
	rootCmd.Flags().BoolP("dry-run", "n", false, "show the new names without renaming")

	cobra.CheckErr(cliconfig.BindFlags(viper.GetViper(), rootCmd.Flags(), "verbose", "report", "dry-run"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
