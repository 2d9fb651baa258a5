package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// DashboardController 处理仪表盘请求
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建一个新的仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getDashboard":
			controller.GetDashboard()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetDashboard 获取仪表盘统计
// @Summary 获取仪表盘
// @Description 每次请求重新计算；付款与合同模块未启用时对应部分为零值
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param asOf query string false "统计时间点 (RFC3339)，默认当前时间"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard() {
	var asOf time.Time
	if raw := c.Ctx.Query("asOf"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrParse, "invalid asOf: "+raw, nil)
			return
		}
		asOf = t
	}

	stats := c.Container.GetService("statistics").(services.InterfaceStatisticsService)
	snapshot, err := stats.ComputeDashboard(c.Ctx.Request.Context(), asOf)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, snapshot)
}
