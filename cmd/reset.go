package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzuhdi/tartil/internal/config"
	"github.com/mzuhdi/tartil/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this erases all studied ayahs and words; rerun with --yes to confirm")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return err
		}
		store, err := progress.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ResetProgress(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all progress")
}
