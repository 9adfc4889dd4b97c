package main

import (
	"fmt"

	"github.com/piresc/boleias/internal/pkg/config"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	ConfigPath string

	configs *models.Config
	log     *logger.ZapLogger
}

// NewRootCommand creates the boleias command tree
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "boleias",
		Short:         "Volunteer ride coordination for emergency relief",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to an env config file")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewExportSyncCommand(opts))

	return cmd
}

func (o *RootOptions) init() error {
	o.configs = config.InitConfig(o.ConfigPath)

	zl, err := logger.InitZapLoggerFromConfig(o.configs)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetGlobalLogger(zl)
	o.log = zl
	return nil
}
