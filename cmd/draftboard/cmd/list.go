package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbmrq/draftboard/internal/board"
	"github.com/dbmrq/draftboard/internal/config"
	drafterrors "github.com/dbmrq/draftboard/internal/errors"
	"github.com/dbmrq/draftboard/internal/loader"
	"github.com/dbmrq/draftboard/internal/logging"
	"github.com/dbmrq/draftboard/internal/player"
	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// Output formats for list.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// listCmd prints a parsed table without the TUI.
var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "Print the players of a table",
	Long: `Print the players of a table without starting the board.

With --selected only ranked players are printed, sorted by rank, as they
would appear on a board with every player picked.

Examples:
  draftboard list players.csv
  draftboard list players.csv --category RB
  draftboard list 'exports/*.csv' --selected --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("category", "c", "", "Only print players in this category")
	listCmd.Flags().BoolP("selected", "s", false, "Print the rank-sorted board instead of file order")
	listCmd.Flags().StringP("output", "o", OutputTable, "Output format: table or json")
}

// listRecord is one row of JSON output.
type listRecord struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Category string            `json:"category,omitempty"`
	Rank     string            `json:"rank,omitempty"`
	Metrics  map[string]string `json:"metrics,omitempty"`
}

// listOutput is the JSON document printed by list --output json.
type listOutput struct {
	Source     string         `json:"source"`
	Total      int            `json:"total"`
	Skipped    int            `json:"skipped"`
	Category   string         `json:"category,omitempty"`
	Categories []string       `json:"categories"`
	Records    []listRecord   `json:"records"`
	Summary    *board.Summary `json:"summary,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	selected, _ := cmd.Flags().GetBool("selected")
	output, _ := cmd.Flags().GetString("output")

	if output != OutputTable && output != OutputJSON {
		return drafterrors.ConfigValidationError("output", fmt.Sprintf("unknown output format %q", output),
			[]string{OutputTable, OutputJSON})
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer setupLogging(cmd, cfg)()

	path, err := loader.Resolve(args[0])
	if err != nil {
		return err
	}
	log := logging.With("command", "list", "path", path)
	ctx := logging.WithSource(cmd.Context(), path)
	ds, err := loader.Load(ctx, path, cfg.Columns)
	if err != nil {
		log.Error("load failed", "error", err)
		return err
	}
	log.Debug("listing players", "records", len(ds.Records), "category", category, "selected", selected)

	st := board.New(ds, 1)
	if category != "" {
		st = st.WithFilter(category)
		if st.Filter() != category {
			return drafterrors.ConfigValidationError("category",
				fmt.Sprintf("no players in category %q", category), st.Categories())
		}
	}

	recs := st.Visible()
	var summary *board.Summary
	if selected {
		recs = rankedBoard(st, category)
		s := board.Summarize(recs, ds.Columns)
		summary = &s
	}

	out := cmd.OutOrStdout()
	if output == OutputJSON {
		return writeListJSON(out, listOutput{
			Source:     path,
			Total:      len(ds.Records),
			Skipped:    ds.Skipped,
			Category:   category,
			Categories: ds.Categories,
			Records:    toListRecords(recs, cfg.Columns),
			Summary:    summary,
		})
	}

	fmt.Fprintln(out, renderTable(recs, cfg, isTerminal(out)))
	fmt.Fprintf(out, "%d of %d players", len(recs), len(ds.Records))
	if ds.Skipped > 0 {
		fmt.Fprintf(out, " (%d rows skipped)", ds.Skipped)
	}
	fmt.Fprintln(out)
	return nil
}

// rankedBoard returns the ranked records of the category in rank order.
func rankedBoard(st board.State, category string) []player.Record {
	all := st.SelectAll().SelectedRecords()
	out := make([]player.Record, 0, len(all))
	for _, r := range all {
		if r.Matches(category) {
			out = append(out, r)
		}
	}
	return out
}

func toListRecords(recs []player.Record, cols config.ColumnsConfig) []listRecord {
	out := make([]listRecord, 0, len(recs))
	for _, r := range recs {
		lr := listRecord{ID: r.ID, Name: r.Name(), Rank: r.Rank}
		if !player.IsUndefined(r.Category) {
			lr.Category = r.Category
		}
		for _, m := range player.Metrics(r, cols) {
			if m.Value == "" || m.Label == player.MetricRank {
				continue
			}
			if lr.Metrics == nil {
				lr.Metrics = make(map[string]string)
			}
			lr.Metrics[m.Label] = m.Value
		}
		out = append(out, lr)
	}
	return out
}

func writeListJSON(w io.Writer, doc listOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// isTerminal reports whether w is a terminal. Colour is only used then.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderTable(recs []player.Record, cfg *config.Config, color bool) string {
	headers := []string{"#", "Name", "Category", player.MetricRank}
	for _, m := range player.Metrics(player.Record{}, cfg.Columns) {
		if m.Label != player.MetricRank {
			headers = append(headers, m.Label)
		}
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		cat := r.Category
		if player.IsUndefined(cat) {
			cat = "-"
		}
		row := []string{strconv.Itoa(r.ID), r.Name(), cat, dash(r.Rank)}
		for _, m := range player.Metrics(r, cfg.Columns) {
			if m.Label != player.MetricRank {
				row = append(row, dash(m.Value))
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
			StyleFunc(func(row, col int) lipgloss.Style {
				s := lipgloss.NewStyle().Padding(0, 1)
				if row == table.HeaderRow {
					return s.Bold(true).Foreground(styles.Primary)
				}
				if col == 2 && row >= 0 && row < len(recs) {
					return s.Foreground(lipgloss.Color(cfg.Categories.Color(recs[row].Category)))
				}
				return s
			})
	} else {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}
	return t.Render()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
