package controllers

import (
	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfacePropertyController 定义物业控制器接口
type InterfacePropertyController interface {
	GetProperties()
	GetProperty()
	CreateProperty()
	UpdateProperty()
	DeleteProperty()
}

// PropertyController 处理物业相关的请求
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController 创建一个新的物业控制器
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// PropertyRequest 表示物业创建请求
type PropertyRequest struct {
	Name        string `json:"name" binding:"required" example:"Calle Mayor 15"`
	Address     string `json:"address" binding:"required" example:"Calle Mayor 15, 3º"`
	City        string `json:"city" binding:"required" example:"Madrid"`
	PostalCode  string `json:"postalCode" example:"28013"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// PropertyUpdateRequest 表示物业更新请求，未提供的字段保持不变
type PropertyUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Address     *string `json:"address" binding:"omitempty,min=1"`
	City        *string `json:"city" binding:"omitempty,min=1"`
	PostalCode  *string `json:"postalCode"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// HandlePropertyFunc 返回一个处理物业请求的Gin处理函数
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperties":
			controller.GetProperties()
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		case "deleteProperty":
			controller.DeleteProperty()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *PropertyController) service() services.InterfacePropertyService {
	return c.Container.GetService("property").(services.InterfacePropertyService)
}

// 1. GetProperties 获取所有物业
// @Summary 获取所有物业
// @Description 物业列表，附带每个物业的房间统计
// @Tags Property
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /properties [get]
func (c *PropertyController) GetProperties() {
	properties, err := c.service().ListProperties(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, properties)
}

// 2. GetProperty 获取单个物业详情
// @Summary 获取物业详情
// @Tags Property
// @Produce json
// @Param id path string true "物业ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /properties/{id} [get]
func (c *PropertyController) GetProperty() {
	property, err := c.service().GetProperty(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, property)
}

// 3. CreateProperty 创建物业
// @Summary 创建物业
// @Tags Property
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param property body PropertyRequest true "物业信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /properties [post]
func (c *PropertyController) CreateProperty() {
	var req PropertyRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	property := &models.Property{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Description: req.Description,
		Image:       req.Image,
	}
	property, err := c.service().CreateProperty(c.Ctx.Request.Context(), property)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, property)
}

// 4. UpdateProperty 更新物业
// @Summary 更新物业
// @Tags Property
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "物业ID"
// @Param property body PropertyUpdateRequest true "物业信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id} [put]
func (c *PropertyController) UpdateProperty() {
	var req PropertyUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	updates := map[string]interface{}{}
	setIf(updates, "name", req.Name)
	setIf(updates, "address", req.Address)
	setIf(updates, "city", req.City)
	setIf(updates, "postal_code", req.PostalCode)
	setIf(updates, "description", req.Description)
	setIf(updates, "image", req.Image)

	property, err := c.service().UpdateProperty(c.Ctx.Request.Context(), c.Ctx.Param("id"), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, property)
}

// 5. DeleteProperty 删除物业
// @Summary 删除物业
// @Description 仍有房间的物业不能删除
// @Tags Property
// @Produce json
// @Security BearerAuth
// @Param id path string true "物业ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /properties/{id} [delete]
func (c *PropertyController) DeleteProperty() {
	if err := c.service().DeleteProperty(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}
