package controllers_fx

import (
	"go.uber.org/fx"

	"skillswap/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewSkillController),
	fx.Provide(controllers.NewSwapRequestController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewHealthController),
)
