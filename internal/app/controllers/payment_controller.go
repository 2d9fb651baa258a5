package controllers

import (
	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfacePaymentController 定义付款控制器接口
type InterfacePaymentController interface {
	GetPayments()
	GetPayment()
	CreatePayment()
	UpdatePayment()
	DeletePayment()
}

// PaymentController 处理付款相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的付款控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest 表示付款创建请求
type PaymentRequest struct {
	Amount        float64              `json:"amount" binding:"required,gt=0" example:"450"`
	Concept       string               `json:"concept" example:"rent"`
	Status        models.PaymentStatus `json:"status" binding:"omitempty,payment_status" example:"pending"`
	DueDate       Date                 `json:"dueDate" example:"2025-03-05"`
	PaidDate      *Date                `json:"paidDate"`
	PaymentMethod string               `json:"paymentMethod" example:"transfer"`
	Reference     string               `json:"reference"`
	Notes         string               `json:"notes"`
	TenantID      string               `json:"tenantId" binding:"required"`
}

// PaymentUpdateRequest 表示付款更新请求. paidDate is always written: omitting it clears the stored date.
type PaymentUpdateRequest struct {
	Amount        *float64              `json:"amount" binding:"omitempty,gt=0"`
	Concept       *string               `json:"concept"`
	Status        *models.PaymentStatus `json:"status" binding:"omitempty,payment_status"`
	DueDate       *Date                 `json:"dueDate"`
	PaidDate      *Date                 `json:"paidDate"`
	PaymentMethod *string               `json:"paymentMethod"`
	Reference     *string               `json:"reference"`
	Notes         *string               `json:"notes"`
	TenantID      *string               `json:"tenantId"`
}

// HandlePaymentFunc 返回一个处理付款请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getPayment":
			controller.GetPayment()
		case "createPayment":
			controller.CreatePayment()
		case "updatePayment":
			controller.UpdatePayment()
		case "deletePayment":
			controller.DeletePayment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// service answers the request itself when the payments module is disabled
func (c *PaymentController) service() (services.InterfacePaymentService, bool) {
	svc, ok := c.Container.GetService("payment").(services.InterfacePaymentService)
	if !ok {
		response.FailWithMessage(c.Ctx, code.ErrDependencyUnavailable, "payments module is disabled", nil)
	}
	return svc, ok
}

// 1. GetPayments 获取付款列表
// @Summary 获取付款列表
// @Description 按到期日升序；upcoming=true 仅返回7天内到期的待付款
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Param status query string false "状态"
// @Param tenantId query string false "租客ID"
// @Param upcoming query bool false "仅即将到期"
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /payments [get]
func (c *PaymentController) GetPayments() {
	svc, ok := c.service()
	if !ok {
		return
	}
	filter := services.PaymentFilter{
		Status:   models.PaymentStatus(c.Ctx.Query("status")),
		TenantID: c.Ctx.Query("tenantId"),
		Upcoming: c.Ctx.Query("upcoming") == "true",
	}
	payments, err := svc.ListPayments(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payments)
}

// 2. GetPayment 获取付款详情
// @Summary 获取付款详情
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Param id path string true "付款ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/{id} [get]
func (c *PaymentController) GetPayment() {
	svc, ok := c.service()
	if !ok {
		return
	}
	payment, err := svc.GetPayment(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payment)
}

// 3. CreatePayment 创建付款
// @Summary 创建付款
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body PaymentRequest true "付款信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payments [post]
func (c *PaymentController) CreatePayment() {
	svc, ok := c.service()
	if !ok {
		return
	}
	var req PaymentRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	payment := &models.Payment{
		Amount:        req.Amount,
		Concept:       req.Concept,
		Status:        req.Status,
		DueDate:       req.DueDate.Time,
		PaidDate:      req.PaidDate.Ptr(),
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Notes:         req.Notes,
		TenantID:      req.TenantID,
	}
	payment, err := svc.CreatePayment(c.Ctx.Request.Context(), payment)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, payment)
}

// 4. UpdatePayment 更新付款
// @Summary 更新付款
// @Description 未提供 paidDate 时清空已付日期
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "付款ID"
// @Param payment body PaymentUpdateRequest true "付款信息"
// @Success 200 {object} response.Response
// @Router /payments/{id} [put]
func (c *PaymentController) UpdatePayment() {
	svc, ok := c.service()
	if !ok {
		return
	}
	var req PaymentUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	updates := map[string]interface{}{
		"paid_date": req.PaidDate.Ptr(),
	}
	setIf(updates, "amount", req.Amount)
	setIf(updates, "concept", req.Concept)
	setIf(updates, "status", req.Status)
	setIf(updates, "payment_method", req.PaymentMethod)
	setIf(updates, "reference", req.Reference)
	setIf(updates, "notes", req.Notes)
	setIf(updates, "tenant_id", req.TenantID)
	if req.DueDate != nil && !req.DueDate.IsZero() {
		updates["due_date"] = req.DueDate.Time
	}

	payment, err := svc.UpdatePayment(c.Ctx.Request.Context(), c.Ctx.Param("id"), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payment)
}

// 5. DeletePayment 删除付款
// @Summary 删除付款
// @Tags Payment
// @Produce json
// @Security BearerAuth
// @Param id path string true "付款ID"
// @Success 200 {object} response.Response
// @Router /payments/{id} [delete]
func (c *PaymentController) DeletePayment() {
	svc, ok := c.service()
	if !ok {
		return
	}
	if err := svc.DeletePayment(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}
