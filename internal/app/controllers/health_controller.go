package controllers

import (
	"runtime"

	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
	"room-manager/internal/infrastructure/database"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Ping 健康检查端点
// @Summary Ping
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func (h *HealthController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports database reachability and connection pool statistics
// @Summary Service status
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health/status [get]
func (h *HealthController) Status() {
	pool := &database.ConnectionPool{DB: h.Container.GetDB()}
	if err := pool.HealthCheck(h.Ctx.Request.Context()); err != nil {
		response.FailWithMessage(h.Ctx, code.ErrDependencyUnavailable, "database unreachable: "+err.Error(), nil)
		return
	}

	stats, err := pool.Stats()
	if err != nil {
		response.Error(h.Ctx, code.Wrap(code.ErrDatabase, err))
		return
	}

	cfg := h.Container.GetConfig()
	response.Success(h.Ctx, gin.H{
		"status":     "healthy",
		"database":   stats,
		"goroutines": runtime.NumGoroutine(),
		"features": gin.H{
			"payments":  cfg.FeaturePayments,
			"contracts": cfg.FeatureContracts,
			"scheduler": cfg.SchedulerEnabled,
		},
	})
}
