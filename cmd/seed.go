package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"userregistry/database"
	"userregistry/internal/repository"
	"userregistry/internal/utils"
)

var (
	seedCount int
	seedStart int
	seedRand  int64
	checkEnd  int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with generated test users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}

		seeder := utils.NewSeeder(repository.NewRegistrationRepository(db), seedRand)
		created, skipped, err := seeder.SeedUsers(ctx, seedStart, seedCount)
		fmt.Fprintf(cmd.OutOrStdout(), "created %d, skipped %d existing\n", created, skipped)
		return err
	},
}

var seedCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List generated test emails that are already registered",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			return err
		}
		defer database.Close(db)

		existing, err := utils.CheckForDuplicateEmails(ctx, repository.NewRegistrationRepository(db), seedStart, checkEnd)
		if err != nil {
			return err
		}
		for _, email := range existing {
			fmt.Fprintln(cmd.OutOrStdout(), email)
		}
		return nil
	},
}

func init() {
	seedCmd.PersistentFlags().IntVar(&seedStart, "start", 0, "index of the first test user")
	seedCmd.Flags().IntVar(&seedCount, "count", utils.DefaultNumUsers, "number of test users to create")
	seedCmd.Flags().Int64Var(&seedRand, "rand-seed", time.Now().UnixNano(), "seed for the generated field values")
	seedCheckCmd.Flags().IntVar(&checkEnd, "end", utils.DefaultNumUsers-1, "index of the last test user to check")

	seedCmd.AddCommand(seedCheckCmd)
	rootCmd.AddCommand(seedCmd)
}
