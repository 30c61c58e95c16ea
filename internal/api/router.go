package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"skillswap/internal/api/controllers"
	"skillswap/pkg/middleware"
	"skillswap/pkg/utils"
)

// RouterConfig holds the HTTP-level settings the router needs.
type RouterConfig struct {
	StaticDir      string
	CORSOrigins    []string
	AuthRateRPS    float64
	AuthRateBurst  int
	MaxUploadBytes int64
}

type Controllers struct {
	Account  *controllers.AccountController
	Users    *controllers.UserController
	Skills   *controllers.SkillController
	Swaps    *controllers.SwapRequestController
	Feedback *controllers.FeedbackController
	Admin    *controllers.AdminController
	Health   *controllers.HealthController
}

var bindingOnce sync.Once

// configureBinding makes request structs strict and reports fields by their
// JSON names.
func configureBinding() {
	bindingOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(f reflect.StructField) string {
				name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
				if name == "" || name == "-" {
					return f.Name
				}
				return name
			})
		}
	})
}

func NewRouter(cfg RouterConfig, ctrl Controllers, issuer *utils.TokenIssuer, log *zap.Logger) *gin.Engine {
	configureBinding()

	r := gin.New()
	if cfg.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = cfg.MaxUploadBytes
	}
	r.Use(
		middleware.TraceIDMiddleware(),
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.PrometheusMiddleware(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	r.GET("/healthz", ctrl.Health.Healthz)
	r.GET("/metrics", middleware.MetricsHandler())
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	auth := middleware.JWTAuthMiddleware(issuer)
	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	{
		limited := authGroup.Group("")
		if cfg.AuthRateRPS > 0 {
			limited.Use(middleware.RateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst))
		}
		limited.POST("/register", ctrl.Account.Register)
		limited.POST("/login", ctrl.Account.Login)
		authGroup.POST("/logout", auth, ctrl.Account.Logout)
		authGroup.GET("/me", auth, ctrl.Account.Me)
	}

	users := apiGroup.Group("/users")
	{
		users.GET("", auth, ctrl.Users.ListPublic)
		users.GET("/search", ctrl.Users.Search)
		users.PUT("/profile", auth, ctrl.Users.UpdateProfile)
		users.PUT("/availability", auth, ctrl.Users.UpdateAvailability)
		users.PUT("/toggle-public", auth, ctrl.Users.TogglePublic)
		users.GET("/:id", ctrl.Users.GetUser)
	}

	skills := apiGroup.Group("/skills", auth)
	{
		skills.POST("/offered", ctrl.Skills.AddOffered)
		skills.POST("/wanted", ctrl.Skills.AddWanted)
		skills.DELETE("/offered/:id", ctrl.Skills.RemoveOffered)
		skills.DELETE("/wanted/:id", ctrl.Skills.RemoveWanted)
	}

	swaps := apiGroup.Group("/swap-requests", auth)
	{
		swaps.GET("", ctrl.Swaps.List)
		swaps.POST("", ctrl.Swaps.Create)
		swaps.PUT("/:id/status", ctrl.Swaps.UpdateStatus)
		swaps.DELETE("/:id", ctrl.Swaps.Delete)
	}

	feedback := apiGroup.Group("/feedback")
	{
		feedback.GET("/user/:userId", ctrl.Feedback.ListForUser)
		feedback.POST("", auth, ctrl.Feedback.AddFeedback)
	}

	admin := apiGroup.Group("/admin", auth, middleware.RoleMiddleware("admin"))
	{
		admin.GET("/users", ctrl.Admin.ListUsers)
		admin.PUT("/users/:id/status", ctrl.Admin.SetStatus)
		admin.DELETE("/users/:id", ctrl.Admin.DeleteUser)
	}

	return r
}
