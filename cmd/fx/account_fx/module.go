package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"skillswap/internal/config"
	"skillswap/internal/repositories"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenIssuer, services.NewAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}
