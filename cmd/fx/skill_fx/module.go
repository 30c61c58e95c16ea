package skill_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"skillswap/internal/repositories"
	"skillswap/internal/services"
)

var Module = fx.Provide(provideSkillRepo, services.NewSkillService)

func provideSkillRepo(db *gorm.DB) repositories.SkillRepository {
	return repositories.NewSkillRepository(db)
}
