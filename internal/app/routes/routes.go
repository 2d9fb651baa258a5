package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "room-manager/docs"
	"room-manager/internal/app/controllers"
	"room-manager/internal/app/middleware"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/logger"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(container *container.ServiceContainer) *gin.Engine {
	cfg := container.GetConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg)))

	if err := controllers.RegisterValidators(); err != nil {
		logger.Error("注册校验器失败: %v", err)
	}
	// 初始化中间件
	middleware.InitAuthMiddleware(container.GetService("auth").(services.InterfaceAuthService))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, container)
	return r
}

// corsConfig allows the configured origins with credentials. "*" reflects any origin.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			c.AllowOriginFunc = func(string) bool { return true }
			return c
		}
	}
	c.AllowOrigins = cfg.CORSOrigins
	if len(c.AllowOrigins) == 0 {
		c.AllowOriginFunc = func(string) bool { return false }
	}
	return c
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 认证路由 - 每秒5个请求，最多突发10个
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.IPRateLimiter(5, 10), middleware.OptionalAuthentication())
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/logout", controllers.HandleAuthFunc(container, "logout"))
	authGroup.GET("/me", controllers.HandleAuthFunc(container, "me"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("")
	auth.Use(middleware.IPRateLimiter(30, 50), middleware.Authentication())
	admin := middleware.RequireAdmin()

	// 物业路由
	propertyGroup := auth.Group("/properties")
	propertyGroup.GET("", controllers.HandlePropertyFunc(container, "getProperties"))
	propertyGroup.GET("/:id", controllers.HandlePropertyFunc(container, "getProperty"))
	propertyGroup.POST("", admin, controllers.HandlePropertyFunc(container, "createProperty"))
	propertyGroup.PUT("/:id", admin, controllers.HandlePropertyFunc(container, "updateProperty"))
	propertyGroup.DELETE("/:id", admin, controllers.HandlePropertyFunc(container, "deleteProperty"))

	// 房间路由
	roomGroup := auth.Group("/rooms")
	roomGroup.GET("", controllers.HandleRoomFunc(container, "getRooms"))
	roomGroup.GET("/:id", controllers.HandleRoomFunc(container, "getRoom"))
	roomGroup.POST("", admin, controllers.HandleRoomFunc(container, "createRoom"))
	roomGroup.PUT("/:id", admin, controllers.HandleRoomFunc(container, "updateRoom"))
	roomGroup.DELETE("/:id", admin, controllers.HandleRoomFunc(container, "deleteRoom"))

	// 租客路由
	tenantGroup := auth.Group("/tenants")
	tenantGroup.GET("", controllers.HandleTenantFunc(container, "getTenants"))
	tenantGroup.GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
	tenantGroup.POST("", admin, controllers.HandleTenantFunc(container, "createTenant"))
	tenantGroup.PUT("/:id", admin, controllers.HandleTenantFunc(container, "updateTenant"))
	tenantGroup.DELETE("/:id", admin, controllers.HandleTenantFunc(container, "deleteTenant"))

	// 工单路由，任何登录用户都可以报告和跟进
	incidentGroup := auth.Group("/incidents")
	incidentGroup.GET("", controllers.HandleIncidentFunc(container, "getIncidents"))
	incidentGroup.GET("/:id", controllers.HandleIncidentFunc(container, "getIncident"))
	incidentGroup.POST("", controllers.HandleIncidentFunc(container, "createIncident"))
	incidentGroup.PUT("/:id", controllers.HandleIncidentFunc(container, "updateIncident"))
	incidentGroup.POST("/:id/updates", controllers.HandleIncidentFunc(container, "addIncidentUpdate"))
	incidentGroup.DELETE("/:id", admin, controllers.HandleIncidentFunc(container, "deleteIncident"))

	// 合同路由
	contractGroup := auth.Group("/contracts")
	contractGroup.GET("", controllers.HandleContractFunc(container, "getContracts"))
	contractGroup.GET("/:id", controllers.HandleContractFunc(container, "getContract"))
	contractGroup.POST("", admin, controllers.HandleContractFunc(container, "createContract"))
	contractGroup.PUT("/:id", admin, controllers.HandleContractFunc(container, "updateContract"))
	contractGroup.DELETE("/:id", admin, controllers.HandleContractFunc(container, "deleteContract"))

	// 付款路由
	paymentGroup := auth.Group("/payments")
	paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	paymentGroup.GET("/:id", controllers.HandlePaymentFunc(container, "getPayment"))
	paymentGroup.POST("", admin, controllers.HandlePaymentFunc(container, "createPayment"))
	paymentGroup.PUT("/:id", admin, controllers.HandlePaymentFunc(container, "updatePayment"))
	paymentGroup.DELETE("/:id", admin, controllers.HandlePaymentFunc(container, "deletePayment"))

	// 仪表盘
	auth.GET("/dashboard", middleware.PathRateLimiter(5, 10), admin, controllers.HandleDashboardFunc(container, "getDashboard"))
}
