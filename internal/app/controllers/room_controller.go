package controllers

import (
	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfaceRoomController 定义房间控制器接口
type InterfaceRoomController interface {
	GetRooms()
	GetRoom()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
}

// RoomController 处理房间相关的请求
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController 创建一个新的房间控制器
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomRequest 表示房间创建请求
type RoomRequest struct {
	Number     string            `json:"number" binding:"required" example:"101"`
	Name       string            `json:"name" example:"Habitación exterior"`
	Floor      int               `json:"floor" example:"1"`
	Price      float64           `json:"price" binding:"required,gt=0" example:"450"`
	Size       *float64          `json:"size" example:"14.5"`
	Amenities  []string          `json:"amenities"`
	Status     models.RoomStatus `json:"status" binding:"omitempty,room_status" example:"available"`
	Image      string            `json:"image"`
	PropertyID string            `json:"propertyId" binding:"required"`
}

// RoomUpdateRequest 表示房间更新请求
type RoomUpdateRequest struct {
	Number     *string            `json:"number" binding:"omitempty,min=1"`
	Name       *string            `json:"name"`
	Floor      *int               `json:"floor"`
	Price      *float64           `json:"price" binding:"omitempty,gt=0"`
	Size       *float64           `json:"size"`
	Amenities  []string           `json:"amenities"`
	Status     *models.RoomStatus `json:"status" binding:"omitempty,room_status"`
	Image      *string            `json:"image"`
	PropertyID *string            `json:"propertyId"`
}

// HandleRoomFunc 返回一个处理房间请求的Gin处理函数
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *RoomController) service() services.InterfaceRoomService {
	return c.Container.GetService("room").(services.InterfaceRoomService)
}

// 1. GetRooms 获取房间列表
// @Summary 获取房间列表
// @Description 按物业名称和房间号排序，附带在住租客和最近的未关闭工单
// @Tags Room
// @Produce json
// @Param propertyId query string false "物业ID"
// @Param status query string false "房间状态"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /rooms [get]
func (c *RoomController) GetRooms() {
	filter := services.RoomFilter{
		PropertyID: c.Ctx.Query("propertyId"),
		Status:     models.RoomStatus(c.Ctx.Query("status")),
	}
	rooms, err := c.service().ListRooms(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, rooms)
}

// 2. GetRoom 获取房间详情
// @Summary 获取房间详情
// @Tags Room
// @Produce json
// @Param id path string true "房间ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	room, err := c.service().GetRoom(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, room)
}

// 3. CreateRoom 创建房间
// @Summary 创建房间
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body RoomRequest true "房间信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	room := &models.Room{
		Number:     req.Number,
		Name:       req.Name,
		Floor:      req.Floor,
		Price:      req.Price,
		Size:       req.Size,
		Amenities:  models.StringList(req.Amenities),
		Status:     req.Status,
		Image:      req.Image,
		PropertyID: req.PropertyID,
	}
	room, err := c.service().CreateRoom(c.Ctx.Request.Context(), room)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, room)
}

// 4. UpdateRoom 更新房间
// @Summary 更新房间
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "房间ID"
// @Param room body RoomUpdateRequest true "房间信息"
// @Success 200 {object} response.Response
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	var req RoomUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	updates := map[string]interface{}{}
	setIf(updates, "number", req.Number)
	setIf(updates, "name", req.Name)
	setIf(updates, "floor", req.Floor)
	setIf(updates, "price", req.Price)
	setIf(updates, "size", req.Size)
	setIf(updates, "status", req.Status)
	setIf(updates, "image", req.Image)
	setIf(updates, "property_id", req.PropertyID)
	if req.Amenities != nil {
		updates["amenities"] = models.StringList(req.Amenities)
	}

	room, err := c.service().UpdateRoom(c.Ctx.Request.Context(), c.Ctx.Param("id"), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, room)
}

// 5. DeleteRoom 删除房间
// @Summary 删除房间
// @Tags Room
// @Produce json
// @Security BearerAuth
// @Param id path string true "房间ID"
// @Success 200 {object} response.Response
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	if err := c.service().DeleteRoom(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}
