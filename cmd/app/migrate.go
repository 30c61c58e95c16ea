package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillswap/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd.Context(), func(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
			if err := infra.AutoMigrate(db); err != nil {
				return err
			}
			log.Info("schema migrated")
			return nil
		})
	},
}

// runOnce boots the base modules, runs fn and shuts everything down again.
func runOnce(ctx context.Context, fn func(context.Context, *gorm.DB, *zap.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		db  *gorm.DB
		log *zap.Logger
	)
	app := fx.New(baseModules(), fx.Populate(&db, &log))
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()

	return fn(ctx, db, log)
}
