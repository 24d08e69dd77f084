package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	database "studenthome_backend/internals/databases"
	"studenthome_backend/internals/seeds"
)

func NewSeedCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load accounts, courses, enrollments and feedback from JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.ConnectDB(); err != nil {
				return err
			}
			defer database.Close()

			if err := database.AutoMigrate(database.DB); err != nil {
				return fmt.Errorf("auto-migrate: %w", err)
			}
			if err := seeds.RunAllSeeds(database.DB, dir); err != nil {
				return err
			}
			log.Info().Str("dir", dir).Msg("seeding done")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", seeds.DefaultDataDir, "Directory holding the seed JSON files")
	return cmd
}
