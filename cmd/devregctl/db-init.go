package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/lib/pq"
	"github.com/spf13/cobra"

	"devreg/pkg/config"
)

// dbInitCmd represents the db init command
var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Provision the application database and role",
	Long: `Provision the application database and role.

Connects to the postgres maintenance database as an administrative user and
creates the application database and a superuser role for it, per the
DB_NAME/DB_USER/DB_PASSWORD configuration. Run once before 'db migrate'.

Example:
  devregctl db init --admin-user postgres`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		adminUser, _ := cmd.Flags().GetString("admin-user")
		if err := provisionDatabase(cfg.Database, adminUser); err != nil {
			fmt.Println("Provisioning failed:", err)
			os.Exit(1)
		}
		fmt.Printf("Created database %q and role %q\n", cfg.Database.Name, cfg.Database.User)
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd)

	dbInitCmd.Flags().String("admin-user", "postgres", "administrative role used for provisioning")
}

func provisionDatabase(cfg config.DatabaseConfig, adminUser string) error {
	conn, err := sql.Open("postgres", cfg.MaintenanceDSN(adminUser))
	if err != nil {
		return fmt.Errorf("failed to open maintenance connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Name)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	stmt := fmt.Sprintf(
		"CREATE USER %s WITH PASSWORD %s SUPERUSER",
		pq.QuoteIdentifier(cfg.User),
		pq.QuoteLiteral(cfg.Password),
	)
	if _, err := conn.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	return nil
}
