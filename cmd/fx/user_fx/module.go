package user_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"skillswap/internal/config"
	"skillswap/internal/models/response_models"
	"skillswap/internal/repositories"
	"skillswap/internal/services"
	"skillswap/pkg/cache"
)

var Module = fx.Provide(provideUserService)

func provideUserService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	store cache.Store,
	presenter *response_models.Presenter,
	log *zap.Logger,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, store, cfg.PublicUsersTTL, presenter, log)
}
