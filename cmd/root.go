package cmd

import (
	"github.com/mzuhdi/tartil/internal/progress"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tartil",
	Short: "Quran learning companion for the terminal",
	Long:  "Tartil — read the short surahs word by word, quiz yourself on meanings, and get feedback on your recitation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TARTIL_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then TARTIL_DB / the XDG default.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	if configured != "" {
		return configured, progress.EnsureDir(configured)
	}
	return progress.DefaultDBPath()
}
