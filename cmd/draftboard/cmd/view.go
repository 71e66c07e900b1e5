package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbmrq/draftboard/internal/tui"
)

// runTUI starts the interactive board. Tests replace it.
var runTUI = tui.Run

// viewCmd opens a file in the TUI. The root command does the same.
var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a player table in the board",
	Long: `Open a player table in the interactive board.

Examples:
  draftboard view players.csv
  draftboard view 'exports/**/*.csv' --watch
  draftboard view                     # pick a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addViewFlags(viewCmd)
}

func addViewFlags(c *cobra.Command) {
	c.Flags().BoolP("watch", "w", false, "Reload the file when it changes on disk")
	c.Flags().String("dir", "", "Directory the file picker starts in")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer setupLogging(cmd, cfg)()

	watch := cfg.Watch.Enabled
	if cmd.Flags().Changed("watch") {
		watch, _ = cmd.Flags().GetBool("watch")
	}
	dir, _ := cmd.Flags().GetString("dir")

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return runTUI(tui.Options{
		Config:  cfg,
		Path:    path,
		Watch:   watch,
		Dir:     dir,
		Context: ctx,
	})
}
