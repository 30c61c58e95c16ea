package swap_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"skillswap/internal/repositories"
	"skillswap/internal/services"
)

var Module = fx.Provide(provideSwapRepo, services.NewSwapService)

func provideSwapRepo(db *gorm.DB) repositories.SwapRequestRepository {
	return repositories.NewSwapRequestRepository(db)
}
