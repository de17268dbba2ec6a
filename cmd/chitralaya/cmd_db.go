package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	_ "github.com/chitralaya/chitralaya/database/migrations"
	"github.com/chitralaya/chitralaya/database/seeders"
	"github.com/chitralaya/chitralaya/pkg/database"
	"github.com/chitralaya/chitralaya/pkg/migration"
)

func withDatabase(fn func() error) error {
	if err := database.Connect(); err != nil {
		return err
	}
	return fn()
}

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations",
			RunE: func(*cobra.Command, []string) error {
				return withDatabase(func() error {
					return migration.Run(database.DB)
				})
			},
		},
		&cobra.Command{
			Use:   "migrate:rollback",
			Short: "Revert the most recent migration",
			RunE: func(*cobra.Command, []string) error {
				return withDatabase(func() error {
					return migration.Rollback(database.DB)
				})
			},
		},
		&cobra.Command{
			Use:   "migrate:status",
			Short: "Show which migrations have run",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(func() error {
					status, err := migration.Status(database.DB)
					if err != nil {
						return err
					}

					names := make([]string, 0, len(status))
					for name := range status {
						names = append(names, name)
					}
					sort.Strings(names)

					for _, name := range names {
						state := "pending"
						if status[name] {
							state = "applied"
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", state, name)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Migrate and seed the catalog and the admin account",
			RunE: func(*cobra.Command, []string) error {
				return withDatabase(func() error {
					if err := migration.Run(database.DB); err != nil {
						return err
					}
					return seeders.Run(database.DB)
				})
			},
		},
	)
}
