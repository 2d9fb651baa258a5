package controllers

import (
	"github.com/gin-gonic/gin"

	"room-manager/internal/app/middleware"
	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfaceIncidentController 定义工单控制器接口
type InterfaceIncidentController interface {
	GetIncidents()
	GetIncident()
	CreateIncident()
	UpdateIncident()
	AddIncidentUpdate()
	DeleteIncident()
}

// IncidentController 处理工单相关的请求
type IncidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewIncidentController 创建一个新的工单控制器
func NewIncidentController(ctx *gin.Context, container *container.ServiceContainer) *IncidentController {
	return &IncidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// IncidentRequest 表示工单创建请求
type IncidentRequest struct {
	Title       string                  `json:"title" binding:"required" example:"Fuga en el baño"`
	Description string                  `json:"description" example:"Gotea el grifo del lavabo"`
	Category    models.IncidentCategory `json:"category" binding:"omitempty,incident_category" example:"plumbing"`
	Priority    models.IncidentPriority `json:"priority" binding:"omitempty,incident_priority" example:"high"`
	Status      models.IncidentStatus   `json:"status" binding:"omitempty,incident_status" example:"open"`
	Image       string                  `json:"image"`
	RoomID      string                  `json:"roomId" binding:"required"`
	TenantID    *string                 `json:"tenantId"`
}

// IncidentUpdateRequest 表示工单字段更新请求，不写入审计记录
type IncidentUpdateRequest struct {
	Title       *string                  `json:"title" binding:"omitempty,min=1"`
	Description *string                  `json:"description"`
	Category    *models.IncidentCategory `json:"category" binding:"omitempty,incident_category"`
	Priority    *models.IncidentPriority `json:"priority" binding:"omitempty,incident_priority"`
	Status      *models.IncidentStatus   `json:"status" binding:"omitempty,incident_status"`
	Image       *string                  `json:"image"`
	RoomID      *string                  `json:"roomId"`
	TenantID    *string                  `json:"tenantId"`
}

// RecordUpdateRequest 表示工单进展记录
type RecordUpdateRequest struct {
	Message string                 `json:"message" example:"Fontanero asignado"`
	Status  *models.IncidentStatus `json:"status" binding:"omitempty,incident_status" example:"in_progress"`
}

// HandleIncidentFunc 返回一个处理工单请求的Gin处理函数
func HandleIncidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewIncidentController(ctx, container)

		switch method {
		case "getIncidents":
			controller.GetIncidents()
		case "getIncident":
			controller.GetIncident()
		case "createIncident":
			controller.CreateIncident()
		case "updateIncident":
			controller.UpdateIncident()
		case "addIncidentUpdate":
			controller.AddIncidentUpdate()
		case "deleteIncident":
			controller.DeleteIncident()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *IncidentController) service() services.InterfaceIncidentService {
	return c.Container.GetService("incident").(services.InterfaceIncidentService)
}

// 1. GetIncidents 获取工单列表
// @Summary 获取工单列表
// @Description 按优先级（紧急优先）再按创建时间倒序排列
// @Tags Incident
// @Produce json
// @Param status query string false "状态"
// @Param priority query string false "优先级"
// @Param roomId query string false "房间ID"
// @Param propertyId query string false "物业ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /incidents [get]
func (c *IncidentController) GetIncidents() {
	filter := services.IncidentFilter{
		Status:     models.IncidentStatus(c.Ctx.Query("status")),
		Priority:   models.IncidentPriority(c.Ctx.Query("priority")),
		RoomID:     c.Ctx.Query("roomId"),
		PropertyID: c.Ctx.Query("propertyId"),
	}
	incidents, err := c.service().ListIncidents(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, incidents)
}

// 2. GetIncident 获取工单详情及全部进展记录
// @Summary 获取工单详情
// @Tags Incident
// @Produce json
// @Param id path string true "工单ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /incidents/{id} [get]
func (c *IncidentController) GetIncident() {
	incident, err := c.service().GetIncident(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, incident)
}

// 3. CreateIncident 报告工单
// @Summary 创建工单
// @Description 租客报告时默认记录为报告人
// @Tags Incident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body IncidentRequest true "工单信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /incidents [post]
func (c *IncidentController) CreateIncident() {
	var req IncidentRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	incident := &models.Incident{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		Image:       req.Image,
		RoomID:      req.RoomID,
		TenantID:    req.TenantID,
	}
	if incident.TenantID == nil {
		if claims, ok := middleware.ClaimsFrom(c.Ctx); ok && claims.Role == models.UserRoleTenant {
			incident.TenantID = claims.TenantID
		}
	}

	incident, err := c.service().CreateIncident(c.Ctx.Request.Context(), incident)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, incident)
}

// 4. UpdateIncident 直接修改工单字段
// @Summary 更新工单
// @Description 直接修改字段，不生成进展记录
// @Tags Incident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "工单ID"
// @Param incident body IncidentUpdateRequest true "工单信息"
// @Success 200 {object} response.Response
// @Router /incidents/{id} [put]
func (c *IncidentController) UpdateIncident() {
	var req IncidentUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	updates := map[string]interface{}{}
	setIf(updates, "title", req.Title)
	setIf(updates, "description", req.Description)
	setIf(updates, "category", req.Category)
	setIf(updates, "priority", req.Priority)
	setIf(updates, "status", req.Status)
	setIf(updates, "image", req.Image)
	setIf(updates, "room_id", req.RoomID)
	setIf(updates, "tenant_id", req.TenantID)

	incident, err := c.service().UpdateIncident(c.Ctx.Request.Context(), c.Ctx.Param("id"), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, incident)
}

// 5. AddIncidentUpdate 记录工单进展并可选地变更状态
// @Summary 添加工单进展
// @Description 进展记录与状态变更在同一事务中提交
// @Tags Incident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "工单ID"
// @Param update body RecordUpdateRequest true "进展信息"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /incidents/{id}/updates [post]
func (c *IncidentController) AddIncidentUpdate() {
	var req RecordUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	update, err := c.service().RecordUpdate(c.Ctx.Request.Context(), c.Ctx.Param("id"), req.Message, req.Status)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, update)
}

// 6. DeleteIncident 删除工单及其进展记录
// @Summary 删除工单
// @Tags Incident
// @Produce json
// @Security BearerAuth
// @Param id path string true "工单ID"
// @Success 200 {object} response.Response
// @Router /incidents/{id} [delete]
func (c *IncidentController) DeleteIncident() {
	if err := c.service().DeleteIncident(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}
