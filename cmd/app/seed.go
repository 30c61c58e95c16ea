package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillswap/internal/infra"
	"skillswap/internal/seed"
)

var adminPassword string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and sample users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd.Context(), func(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
			if err := infra.AutoMigrate(db); err != nil {
				return err
			}
			created, err := seed.Run(ctx, db, adminPassword, log)
			if err != nil {
				return err
			}
			log.Info("seed finished", zap.Int("created", created))
			return nil
		})
	},
}

func init() {
	seedCmd.Flags().StringVar(&adminPassword, "admin-password", os.Getenv("SEED_ADMIN_PASSWORD"),
		"password for "+seed.AdminEmail+" (defaults to $SEED_ADMIN_PASSWORD)")
}
