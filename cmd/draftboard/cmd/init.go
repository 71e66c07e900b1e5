package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbmrq/draftboard/internal/config"
	drafterrors "github.com/dbmrq/draftboard/internal/errors"
)

// runForm runs an interactive form. Tests replace it.
var runForm = func(f *huh.Form) error { return f.Run() }

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a draftboard configuration",
	Long: `Create .draftboard/config.yaml in the current directory.

You are asked for the column names of your player table and the rostered
percentages that mark a player as high or medium. Press enter to keep a
default.

Use --force to overwrite an existing configuration and --defaults to skip
the questions.

Examples:
  draftboard init
  draftboard init --defaults
  draftboard init --force --config ~/draftboard.yaml`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	initCmd.Flags().Bool("defaults", false, "Write the default configuration without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	defaults, _ := cmd.Flags().GetBool("defaults")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return drafterrors.ConfigExists(path)
	}

	cfg := config.NewConfig()
	if !defaults {
		if err := askConfig(cfg); err != nil {
			return err
		}
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return drafterrors.ConfigValidationError("config", err.Error(), nil)
	}

	if err := config.Save(cfg, path); err != nil {
		return drafterrors.ConfigWriteFailed(path, err)
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("Run 'draftboard <file>' to open a player table.")
	return nil
}

// askConfig fills cfg from an interactive form.
func askConfig(cfg *config.Config) error {
	high := formatPercent(cfg.Display.RosterHigh)
	medium := formatPercent(cfg.Display.RosterMedium)

	form := newForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Columns").
				Description("Header names in your player table."),
			columnInput("First name column", &cfg.Columns.FirstName),
			columnInput("Last name column", &cfg.Columns.LastName),
			columnInput("Category column", &cfg.Columns.Category).
				Description("Tabs and badges are built from this column."),
			columnInput("Rank column", &cfg.Columns.Rank).
				Description("The board is sorted by this column."),
		),
		huh.NewGroup(
			columnInput("ADP column", &cfg.Columns.ADP),
			columnInput("Projected points column", &cfg.Columns.ProjectedPoints),
			columnInput("Position rank column", &cfg.Columns.PositionRank),
			columnInput("Team column", &cfg.Columns.Team),
			columnInput("Rostered column", &cfg.Columns.Rostered),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("High rostered %").
				Description("Players at or above this are shown in the high tier.").
				Value(&high).
				Validate(validatePercent),
			huh.NewInput().
				Title("Medium rostered %").
				Value(&medium).
				Validate(validatePercent),
			huh.NewConfirm().
				Title("Reload files when they change on disk?").
				Value(&cfg.Watch.Enabled),
		),
	)

	if err := runForm(form); err != nil {
		return err
	}

	cfg.Display.RosterHigh, _ = strconv.ParseFloat(strings.TrimSpace(high), 64)
	cfg.Display.RosterMedium, _ = strconv.ParseFloat(strings.TrimSpace(medium), 64)
	if cfg.Display.RosterMedium > cfg.Display.RosterHigh {
		return drafterrors.ConfigValidationError("display.roster_medium",
			"medium threshold is above the high threshold", nil)
	}
	return nil
}

func columnInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(*value).
		Value(value)
}

// newForm creates a form, falling back to accessible mode without a TTY.
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		form = form.WithAccessible(true)
	}
	return form
}

func validatePercent(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("enter a value between 0 and 100")
	}
	return nil
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
