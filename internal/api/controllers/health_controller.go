package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillswap/pkg/middleware"
	"skillswap/pkg/utils"
)

type HealthController struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHealthController(db *gorm.DB, log *zap.Logger) *HealthController {
	return &HealthController{db: db, log: log}
}

// Healthz godoc
// @Summary Liveness and database reachability
// @Tags Ops
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (h *HealthController) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	middleware.RecordHealthCheck(err == nil)
	if err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	utils.RespondSuccess(c, gin.H{"database": "ok"}, "")
}
