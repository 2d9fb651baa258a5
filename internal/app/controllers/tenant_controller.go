package controllers

import (
	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfaceTenantController 定义租客控制器接口
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	DeleteTenant()
}

// TenantController 处理租客相关的请求
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController 创建一个新的租客控制器
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest 表示租客创建请求
type TenantRequest struct {
	Name    string              `json:"name" binding:"required" example:"María García"`
	Email   string              `json:"email" binding:"required,email" example:"maria@email.com"`
	Phone   string              `json:"phone" example:"+34 600 123 456"`
	DNI     string              `json:"dni" example:"12345678A"`
	Photo   string              `json:"photo"`
	MoveIn  Date                `json:"moveIn" example:"2024-09-01"`
	MoveOut *Date               `json:"moveOut"`
	Status  models.TenantStatus `json:"status" binding:"omitempty,tenant_status" example:"active"`
	RoomID  string              `json:"roomId" binding:"required"`
}

// TenantUpdateRequest 表示租客更新请求
type TenantUpdateRequest struct {
	Name    *string              `json:"name" binding:"omitempty,min=1"`
	Email   *string              `json:"email" binding:"omitempty,email"`
	Phone   *string              `json:"phone"`
	DNI     *string              `json:"dni"`
	Photo   *string              `json:"photo"`
	MoveIn  *Date                `json:"moveIn"`
	MoveOut *Date                `json:"moveOut"`
	Status  *models.TenantStatus `json:"status" binding:"omitempty,tenant_status"`
	RoomID  *string              `json:"roomId"`
}

// HandleTenantFunc 返回一个处理租客请求的Gin处理函数
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *TenantController) service() services.InterfaceTenantService {
	return c.Container.GetService("tenant").(services.InterfaceTenantService)
}

// 1. GetTenants 获取租客列表
// @Summary 获取租客列表
// @Tags Tenant
// @Produce json
// @Param status query string false "租客状态"
// @Param roomId query string false "房间ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /tenants [get]
func (c *TenantController) GetTenants() {
	filter := services.TenantFilter{
		Status: models.TenantStatus(c.Ctx.Query("status")),
		RoomID: c.Ctx.Query("roomId"),
	}
	tenants, err := c.service().ListTenants(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenants)
}

// 2. GetTenant 获取租客详情
// @Summary 获取租客详情
// @Tags Tenant
// @Produce json
// @Param id path string true "租客ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	tenant, err := c.service().GetTenant(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 3. CreateTenant 创建租客并将房间标记为已入住
// @Summary 创建租客
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenant body TenantRequest true "租客信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tenants [post]
func (c *TenantController) CreateTenant() {
	var req TenantRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	tenant := &models.Tenant{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		DNI:     req.DNI,
		Photo:   req.Photo,
		MoveIn:  req.MoveIn.Time,
		MoveOut: req.MoveOut.Ptr(),
		Status:  req.Status,
		RoomID:  req.RoomID,
	}
	tenant, err := c.service().CreateTenant(c.Ctx.Request.Context(), tenant)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, tenant)
}

// 4. UpdateTenant 更新租客
// @Summary 更新租客
// @Description 租客退租不会自动释放房间
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "租客ID"
// @Param tenant body TenantUpdateRequest true "租客信息"
// @Success 200 {object} response.Response
// @Router /tenants/{id} [put]
func (c *TenantController) UpdateTenant() {
	var req TenantUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	updates := map[string]interface{}{}
	setIf(updates, "name", req.Name)
	setIf(updates, "email", req.Email)
	setIf(updates, "phone", req.Phone)
	setIf(updates, "dni", req.DNI)
	setIf(updates, "photo", req.Photo)
	setIf(updates, "status", req.Status)
	setIf(updates, "room_id", req.RoomID)
	if req.MoveIn != nil && !req.MoveIn.IsZero() {
		updates["move_in"] = req.MoveIn.Time
	}
	if req.MoveOut != nil {
		updates["move_out"] = req.MoveOut.Ptr()
	}

	tenant, err := c.service().UpdateTenant(c.Ctx.Request.Context(), c.Ctx.Param("id"), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 5. DeleteTenant 删除租客
// @Summary 删除租客
// @Tags Tenant
// @Produce json
// @Security BearerAuth
// @Param id path string true "租客ID"
// @Success 200 {object} response.Response
// @Router /tenants/{id} [delete]
func (c *TenantController) DeleteTenant() {
	if err := c.service().DeleteTenant(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}
