package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/draftboard/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for draftboard.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  draftboard version
  draftboard version --json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("json", false, "Print version information as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := info.JSON()
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(info.FullString())
	return nil
}
