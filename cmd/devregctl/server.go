package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devreg/pkg/config"
	"devreg/pkg/db"
	"devreg/pkg/logger"
	"devreg/pkg/server"
	"devreg/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the device registry API server",
	Long: `Run the device registry API server.

Configuration comes from the environment (DATABASE_URL or DB_HOST/DB_NAME/
DB_USER/DB_PASSWORD, BIND_ADDRESS, PORT, LOG_LEVEL).

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.HTTP.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.HTTP.Port = port
		}

		log := logger.Init(logger.Options{
			Level:  cfg.Log.Level,
			Pretty: cfg.Log.Pretty,
		})

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Info().Msg("running database migrations")
			if err := runMigrations(cfg.Database.DSN()); err != nil {
				log.Fatal().Err(err).Msg("migration failed")
			}
		}

		gormDB, err := db.Connect(db.Config{
			DSN:   cfg.Database.DSN(),
			Debug: cfg.Log.Level == "debug",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("unable to connect to database")
		}

		s := server.NewServer(gormDB, log, cfg.HTTP.BindAddress, cfg.HTTP.Port)
		endpoints.RegisterAll(s)

		log.Info().
			Str("bind_address", cfg.HTTP.BindAddress).
			Str("port", cfg.HTTP.Port).
			Msg("running server")
		log.Fatal().Err(s.Start()).Msg("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides PORT)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides BIND_ADDRESS)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
