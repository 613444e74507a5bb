package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzuhdi/tartil/internal/config"
	"github.com/mzuhdi/tartil/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		ctx := cmd.Context()
		totals, err := store.Totals(ctx)
		if err != nil {
			return err
		}
		ayahs, err := store.StudiedAyahs(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Ayahs studied: %d\n", totals.Ayahs)
		fmt.Printf("Words studied: %d\n", totals.Words)
		if len(ayahs) > 0 {
			fmt.Println("\nStudied ayahs:")
			for _, id := range ayahs {
				fmt.Println("  " + id)
			}
		}
		return nil
	},
}
