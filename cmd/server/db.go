// cmd/server/db.go
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/product-catalog/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the product table and its indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.RunMigrations(db)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog into an empty product table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.RunMigrations(db); err != nil {
			return err
		}

		inserted, err := database.SeedInitialData(db)
		if err != nil {
			return err
		}

		logrus.WithField("inserted", inserted).Info("Seed finished")
		fmt.Fprintf(cmd.OutOrStdout(), "%d products inserted\n", inserted)
		return nil
	},
}
