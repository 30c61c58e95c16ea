package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillswap/cmd/fx/account_fx"
	"skillswap/cmd/fx/cache_fx"
	"skillswap/cmd/fx/config_fx"
	"skillswap/cmd/fx/controllers_fx"
	"skillswap/cmd/fx/db_fx"
	"skillswap/cmd/fx/feedback_fx"
	"skillswap/cmd/fx/logger_fx"
	"skillswap/cmd/fx/skill_fx"
	"skillswap/cmd/fx/storage_fx"
	"skillswap/cmd/fx/swap_fx"
	"skillswap/cmd/fx/user_fx"
	"skillswap/internal/api"
	"skillswap/internal/api/controllers"
	"skillswap/internal/config"
	"skillswap/internal/infra"
	"skillswap/pkg/storage"
	"skillswap/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// baseModules is what every command needs: configuration, logging and the
// database handle.
func baseModules() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
}

func runServe() error {
	app := fx.New(
		baseModules(),
		cache_fx.Module,
		storage_fx.Module,
		account_fx.Module,
		user_fx.Module,
		skill_fx.Module,
		swap_fx.Module,
		feedback_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(AutoMigrate),
		fx.Invoke(StartServer),
	)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

// AutoMigrate keeps the schema current on boot.
func AutoMigrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

type routerParams struct {
	fx.In

	Config   *config.Config
	Issuer   *utils.TokenIssuer
	Log      *zap.Logger
	Account  *controllers.AccountController
	Users    *controllers.UserController
	Skills   *controllers.SkillController
	Swaps    *controllers.SwapRequestController
	Feedback *controllers.FeedbackController
	Admin    *controllers.AdminController
	Health   *controllers.HealthController
}

func ProvideRouter(p routerParams) *gin.Engine {
	switch p.Config.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(p.Config.GinMode)
	}

	ctrl := api.Controllers{
		Account:  p.Account,
		Users:    p.Users,
		Skills:   p.Skills,
		Swaps:    p.Swaps,
		Feedback: p.Feedback,
		Admin:    p.Admin,
		Health:   p.Health,
	}
	return api.NewRouter(api.RouterConfig{
		StaticDir:      staticDirFor(p.Config),
		CORSOrigins:    p.Config.CORSOrigins,
		AuthRateRPS:    float64(p.Config.AuthRateLimitRPS),
		AuthRateBurst:  p.Config.AuthRateLimitBurst,
		MaxUploadBytes: storage.MaxPhotoSize + 1<<20,
	}, ctrl, p.Issuer, p.Log)
}

// staticDirFor serves the static tree, creating it so the default avatar
// path resolves even on a fresh checkout.
func staticDirFor(cfg *config.Config) string {
	dir := cfg.StaticRoot()
	_ = os.MkdirAll(filepath.Join(dir, "images"), 0o755)
	return dir
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger, shutdowner fx.Shutdowner) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
