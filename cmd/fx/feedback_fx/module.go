package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"skillswap/internal/repositories"
	"skillswap/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, services.NewFeedbackService,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}
