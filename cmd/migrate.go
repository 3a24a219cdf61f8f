package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sysadmin/sysadmin-api/internal/infrastructure/config"
	"github.com/sysadmin/sysadmin-api/internal/infrastructure/db/sqlstore"
	"github.com/sysadmin/sysadmin-api/pkg/logger"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the users and sys_resource tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadDatabase(cmd.Context())
		if err != nil {
			return err
		}
		log := logger.Init(logger.Options{Service: "sysadmin-migrate"})

		db, err := sqlstore.Open(cmd.Context(), sqlstore.Config{
			Driver:       cfg.Driver,
			URL:          cfg.URL,
			MaxOpenConns: cfg.MaxOpenConns,
			Logger:       log,
		})
		if err != nil {
			return err
		}
		defer func() {
			_ = sqlstore.Close(db)
		}()

		if err := sqlstore.Migrate(db); err != nil {
			return err
		}
		log.Info().Str("driver", cfg.Driver).Msg("schema migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
