package controllers

import (
	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfaceContractController 定义合同控制器接口
type InterfaceContractController interface {
	GetContracts()
	GetContract()
	CreateContract()
	UpdateContract()
	DeleteContract()
}

// ContractController 处理合同相关的请求
type ContractController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContractController 创建一个新的合同控制器
func NewContractController(ctx *gin.Context, container *container.ServiceContainer) *ContractController {
	return &ContractController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContractRequest 表示合同创建请求. contractNumber is generated when empty.
type ContractRequest struct {
	ContractNumber  string                `json:"contractNumber" example:"CTR-2025-001"`
	StartDate       Date                  `json:"startDate" example:"2025-01-01"`
	EndDate         Date                  `json:"endDate" example:"2025-12-31"`
	MonthlyRent     float64               `json:"monthlyRent" binding:"gte=0" example:"450"`
	Deposit         float64               `json:"deposit" binding:"gte=0" example:"900"`
	DepositPaid     bool                  `json:"depositPaid"`
	DepositReturned bool                  `json:"depositReturned"`
	Terms           string                `json:"terms"`
	Notes           string                `json:"notes"`
	Status          models.ContractStatus `json:"status" binding:"omitempty,contract_status" example:"active"`
	TenantID        string                `json:"tenantId" binding:"required"`
}

// ContractUpdateRequest 表示合同更新请求，合同编号不可修改
type ContractUpdateRequest struct {
	StartDate       *Date                  `json:"startDate"`
	EndDate         *Date                  `json:"endDate"`
	MonthlyRent     *float64               `json:"monthlyRent" binding:"omitempty,gte=0"`
	Deposit         *float64               `json:"deposit" binding:"omitempty,gte=0"`
	DepositPaid     *bool                  `json:"depositPaid"`
	DepositReturned *bool                  `json:"depositReturned"`
	Terms           *string                `json:"terms"`
	Notes           *string                `json:"notes"`
	Status          *models.ContractStatus `json:"status" binding:"omitempty,contract_status"`
	TenantID        *string                `json:"tenantId"`
}

// HandleContractFunc 返回一个处理合同请求的Gin处理函数
func HandleContractFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContractController(ctx, container)

		switch method {
		case "getContracts":
			controller.GetContracts()
		case "getContract":
			controller.GetContract()
		case "createContract":
			controller.CreateContract()
		case "updateContract":
			controller.UpdateContract()
		case "deleteContract":
			controller.DeleteContract()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// service answers the request itself when the contracts module is disabled
func (c *ContractController) service() (services.InterfaceContractService, bool) {
	svc, ok := c.Container.GetService("contract").(services.InterfaceContractService)
	if !ok {
		response.FailWithMessage(c.Ctx, code.ErrDependencyUnavailable, "contracts module is disabled", nil)
	}
	return svc, ok
}

// 1. GetContracts 获取合同列表
// @Summary 获取合同列表
// @Description 按结束日期升序；expiring=true 仅返回30天内到期的有效合同
// @Tags Contract
// @Produce json
// @Security BearerAuth
// @Param status query string false "状态"
// @Param tenantId query string false "租客ID"
// @Param expiring query bool false "仅即将到期"
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /contracts [get]
func (c *ContractController) GetContracts() {
	svc, ok := c.service()
	if !ok {
		return
	}
	filter := services.ContractFilter{
		Status:   models.ContractStatus(c.Ctx.Query("status")),
		TenantID: c.Ctx.Query("tenantId"),
		Expiring: c.Ctx.Query("expiring") == "true",
	}
	contracts, err := svc.ListContracts(c.Ctx.Request.Context(), filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, contracts)
}

// 2. GetContract 获取合同详情
// @Summary 获取合同详情
// @Tags Contract
// @Produce json
// @Security BearerAuth
// @Param id path string true "合同ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contracts/{id} [get]
func (c *ContractController) GetContract() {
	svc, ok := c.service()
	if !ok {
		return
	}
	contract, err := svc.GetContract(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, contract)
}

// 3. CreateContract 创建合同
// @Summary 创建合同
// @Tags Contract
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contract body ContractRequest true "合同信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contracts [post]
func (c *ContractController) CreateContract() {
	svc, ok := c.service()
	if !ok {
		return
	}
	var req ContractRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	contract := &models.Contract{
		ContractNumber:  req.ContractNumber,
		StartDate:       req.StartDate.Time,
		EndDate:         req.EndDate.Time,
		MonthlyRent:     req.MonthlyRent,
		Deposit:         req.Deposit,
		DepositPaid:     req.DepositPaid,
		DepositReturned: req.DepositReturned,
		Terms:           req.Terms,
		Notes:           req.Notes,
		Status:          req.Status,
		TenantID:        req.TenantID,
	}
	contract, err := svc.CreateContract(c.Ctx.Request.Context(), contract)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, contract)
}

// 4. UpdateContract 更新合同
// @Summary 更新合同
// @Tags Contract
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "合同ID"
// @Param contract body ContractUpdateRequest true "合同信息"
// @Success 200 {object} response.Response
// @Router /contracts/{id} [put]
func (c *ContractController) UpdateContract() {
	svc, ok := c.service()
	if !ok {
		return
	}
	var req ContractUpdateRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	updates := map[string]interface{}{}
	setIf(updates, "monthly_rent", req.MonthlyRent)
	setIf(updates, "deposit", req.Deposit)
	setIf(updates, "deposit_paid", req.DepositPaid)
	setIf(updates, "deposit_returned", req.DepositReturned)
	setIf(updates, "terms", req.Terms)
	setIf(updates, "notes", req.Notes)
	setIf(updates, "status", req.Status)
	setIf(updates, "tenant_id", req.TenantID)
	if req.StartDate != nil && !req.StartDate.IsZero() {
		updates["start_date"] = req.StartDate.Time
	}
	if req.EndDate != nil && !req.EndDate.IsZero() {
		updates["end_date"] = req.EndDate.Time
	}

	contract, err := svc.UpdateContract(c.Ctx.Request.Context(), c.Ctx.Param("id"), updates)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, contract)
}

// 5. DeleteContract 删除合同
// @Summary 删除合同
// @Tags Contract
// @Produce json
// @Security BearerAuth
// @Param id path string true "合同ID"
// @Success 200 {object} response.Response
// @Router /contracts/{id} [delete]
func (c *ContractController) DeleteContract() {
	svc, ok := c.service()
	if !ok {
		return
	}
	if err := svc.DeleteContract(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}
