package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"room-manager/internal/app/middleware"
	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Register()
	Logout()
	Me()
}

// AuthController 处理身份验证请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@roommanager.com"`
	Password string `json:"password" binding:"required" example:"123456"`
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email" example:"maria@email.com"`
	Password string          `json:"password" binding:"required,min=6" example:"123456"`
	Name     string          `json:"name" example:"María García"`
	Role     models.UserRole `json:"role" binding:"omitempty,user_role" example:"tenant"`
	TenantID *string         `json:"tenantId"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "logout":
			controller.Logout()
		case "me":
			controller.Me()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

func (c *AuthController) service() services.InterfaceAuthService {
	return c.Container.GetService("auth").(services.InterfaceAuthService)
}

// 1. Login 处理用户登录
// @Summary      User Login
// @Description  Verifies the credentials and sets the session cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "credentials"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	result, err := c.service().Login(c.Ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	cfg := c.Container.GetConfig()
	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(middleware.SessionCookie, result.Token, int(cfg.SessionTTL/time.Second), "/", "", cfg.IsProduction(), true)
	response.Success(c.Ctx, result)
}

// 2. Register 创建账户
// @Summary      Register
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "account"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	// only an admin session may create another admin
	if req.Role == models.UserRoleAdmin {
		if claims, ok := middleware.ClaimsFrom(c.Ctx); !ok || claims.Role != models.UserRoleAdmin {
			response.FailWithMessage(c.Ctx, code.ErrForbidden, "only admins can create admin accounts", nil)
			return
		}
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		TenantID: req.TenantID,
	}
	user, err := c.service().Register(c.Ctx.Request.Context(), user, req.Password)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, user)
}

// 3. Logout 清除会话
// @Summary      Logout
// @Tags         Auth
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /auth/logout [post]
func (c *AuthController) Logout() {
	if claims, ok := middleware.ClaimsFrom(c.Ctx); ok {
		if err := c.service().Logout(c.Ctx.Request.Context(), claims); err != nil {
			response.Error(c.Ctx, err)
			return
		}
	}
	c.Ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", c.Container.GetConfig().IsProduction(), true)
	response.Success(c.Ctx, nil)
}

// 4. Me 返回当前用户
// @Summary      Current user
// @Description  Returns the logged-in user with tenant, room and property, or user null
// @Tags         Auth
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /auth/me [get]
func (c *AuthController) Me() {
	claims, ok := middleware.ClaimsFrom(c.Ctx)
	if !ok {
		response.Success(c.Ctx, gin.H{"user": nil})
		return
	}

	user, err := c.service().CurrentUser(c.Ctx.Request.Context(), claims.UserID)
	if err != nil {
		if code.IsNotFound(err) {
			response.Success(c.Ctx, gin.H{"user": nil})
			return
		}
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"user": user})
}
