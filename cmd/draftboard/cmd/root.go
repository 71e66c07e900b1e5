// Package cmd provides the CLI commands for draftboard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/draftboard/internal/config"
	drafterrors "github.com/dbmrq/draftboard/internal/errors"
	"github.com/dbmrq/draftboard/internal/logging"
)

// Version information, set by main before Execute.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "draftboard [file]",
	Short: "Draft board for player tables",
	Long: `draftboard shows a player table as a scrollable list of cards, lets you
filter it by category and build a rank-ordered board of picks.

The file may be a .csv, .txt or .xlsx table, optionally compressed with
gzip, bzip2 or xz, or a glob pattern such as 'exports/**/*.csv' (the most
recently modified match is opened). Without a file a picker is shown.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: "+config.DefaultConfigPath+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	addViewFlags(rootCmd)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("draftboard {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, drafterrors.FormatError(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// loadConfig reads the --config file, or .draftboard/config.yaml if present.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.NewLoader().LoadConfig(path)
	if err != nil {
		if path == "" {
			path = config.DefaultConfigPath
		}
		return nil, drafterrors.ConfigParseError(path, err)
	}
	return cfg, nil
}

// setupLogging starts the file logger. The returned func closes it.
func setupLogging(cmd *cobra.Command, cfg *config.Config) func() {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if err := logging.InitGlobal(logging.ConfigFrom(cfg.Log, verbose)); err != nil {
		cmd.PrintErrf("Warning: logging disabled: %v\n", err)
		return func() {}
	}
	logging.Info("draftboard starting", "version", Version, "command", cmd.Name(), "verbose", verbose)
	if path := logging.Global().LogPath(); verbose && path != "" {
		cmd.PrintErrf("Logging to %s\n", path)
	}
	return func() { _ = logging.CloseGlobal() }
}
