package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
	"github.com/imagehealth/clinic-dashboard/internal/core/service"
	mongodb "github.com/imagehealth/clinic-dashboard/internal/infrastructure/db/mongo"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/fixtures"
	"github.com/imagehealth/clinic-dashboard/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo clinics and staff accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, log, err := loadServerConfig(ctx)
		if err != nil {
			return err
		}

		demo, err := fixtures.DemoAccounts()
		if err != nil {
			return err
		}

		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := mongodb.Disconnect(client); err != nil {
				log.Error().Err(err).Msg("mongo disconnect failed")
			}
		}()

		users := mongodb.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}

		auth := service.NewAuthService(users, nil, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
		accounts := make([]ports.RegisterInput, 0, len(demo.Accounts))
		for _, a := range demo.Accounts {
			accounts = append(accounts, a.Register())
		}

		report, err := service.NewSeedService(users, auth, logger.Component("seed")).Seed(ctx, demo.Clinics, accounts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "clinics: %d, accounts created: %d, already present: %d\n",
			report.Clinics, report.Created, report.Existing)
		return nil
	},
}
