package main

import (
	"github.com/piresc/boleias/internal/pkg/database"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pg, err := database.NewPostgresClient(rootOpts.configs.Database)
			if err != nil {
				return err
			}
			defer pg.Close()

			applied, err := database.Migrate(cmd.Context(), pg.GetDB())
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				logger.Info("Schema is up to date")
				return nil
			}
			logger.Info("Migrations applied", logger.Strings("versions", applied))
			return nil
		},
	}
}
