package container

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"room-manager/internal/domain/services"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/logger"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	sessionStore services.InterfaceSessionStore
	authService  services.InterfaceAuthService
	notifier     services.IncidentNotifier

	// 业务服务
	propertyService   services.InterfacePropertyService
	roomService       services.InterfaceRoomService
	tenantService     services.InterfaceTenantService
	incidentService   services.InterfaceIncidentService
	paymentService    services.InterfacePaymentService
	contractService   services.InterfaceContractService
	statisticsService services.InterfaceStatisticsService

	scheduler *services.MaintenanceScheduler

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器. redisClient may be nil.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}
	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warning("Redis连接测试失败: %v，会话将无法在服务端撤销", err)
			if cerr := redisClient.Close(); cerr != nil {
				logger.Warning("关闭Redis客户端失败: %v", cerr)
			}
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.redis != nil {
		c.sessionStore = services.NewRedisSessionStore(c.redis)
	}
	c.authService = services.NewAuthService(c.db, c.config, c.sessionStore)
	c.notifier = services.NewIncidentNotifier(c.config)

	c.propertyService = services.NewPropertyService(c.db, c.config)
	c.roomService = services.NewRoomService(c.db, c.config)
	c.tenantService = services.NewTenantService(c.db, c.config)
	c.incidentService = services.NewIncidentService(c.db, c.config, c.notifier)

	// 可选的付款与合同模块
	var (
		paymentStats  services.PaymentStats
		contractStats services.ContractStats
	)
	if c.config.FeaturePayments {
		c.paymentService = services.NewPaymentService(c.db, c.config)
		paymentStats = c.paymentService
	}
	if c.config.FeatureContracts {
		c.contractService = services.NewContractService(c.db, c.config)
		contractStats = c.contractService
	}
	c.statisticsService = services.NewStatisticsService(c.db, c.config, paymentStats, contractStats)

	if c.config.SchedulerEnabled {
		c.scheduler = services.NewMaintenanceScheduler(c.paymentService, c.contractService, c.config.SchedulerInterval)
	}
}

// Start starts the background jobs, if any are configured
func (c *ServiceContainer) Start() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.scheduler == nil {
		return nil
	}
	return c.scheduler.Start()
}

// Close stops background jobs and releases connections
func (c *ServiceContainer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scheduler != nil {
		if err := c.scheduler.Stop(); err != nil {
			logger.Warning("stopping scheduler: %v", err)
		}
	}
	if n, ok := c.notifier.(*services.MQTTIncidentNotifier); ok {
		n.Close()
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
}

// GetService 获取指定名称的服务. Disabled optional services return nil.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "auth":
		return c.authService
	case "property":
		return c.propertyService
	case "room":
		return c.roomService
	case "tenant":
		return c.tenantService
	case "incident":
		return c.incidentService
	case "payment":
		if c.paymentService == nil {
			return nil
		}
		return c.paymentService
	case "contract":
		if c.contractService == nil {
			return nil
		}
		return c.contractService
	case "statistics":
		return c.statisticsService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
