// @title           Room Manager API
// @version         1.0
// @description     Property rental management: properties, rooms, tenants, incidents, payments, contracts and a dashboard.

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token with the "Bearer " prefix. Browsers send the session cookie instead.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"room-manager/internal/app/routes"
	"room-manager/internal/domain/services"
	"room-manager/internal/domain/services/container"
	"room-manager/internal/infrastructure/config"
	"room-manager/internal/infrastructure/database"
	"room-manager/pkg/logger"
)

func main() {
	// 加载.env文件，环境变量也可能已经通过其他方式设置
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "room-manager",
		Short: "Room rental management backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			return logger.SetupLogger(cfg.LogDir, cfg.LogLevel)
		},
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime.GOMAXPROCS(runtime.NumCPU())
			cfg := config.GetConfig()

			pool, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(pool.GetDB(), cfg.DBMigrationMode); err != nil {
				return fmt.Errorf("数据库迁移失败: %w", err)
			}
			if err := database.EnsureAdminExists(cmd.Context(), pool.GetDB(), cfg); err != nil {
				return fmt.Errorf("创建管理员失败: %w", err)
			}

			var redisClient *redis.Client
			if cfg.RedisEnabled {
				redisClient = services.NewRedisClient(cfg)
				if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
					logger.Warning("Redis不可用，会话将无法撤销: %v", err)
				}
			}

			c := container.NewServiceContainer(pool.GetDB(), cfg, redisClient)
			if err := c.Start(); err != nil {
				return fmt.Errorf("启动后台任务失败: %w", err)
			}
			defer c.Close()

			printSystemInfo(pool)

			srv := &http.Server{
				Addr:    "0.0.0.0:" + cfg.ServerPort,
				Handler: routes.SetupRouter(c),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("服务器启动在: http://%s", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("启动服务器失败: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("正在关闭服务器...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			mode, _ := cmd.Flags().GetString("mode")
			if mode == "" {
				mode = cfg.DBMigrationMode
			}

			pool, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(pool.GetDB(), mode); err != nil {
				return fmt.Errorf("数据库迁移失败: %w", err)
			}
			return database.EnsureAdminExists(cmd.Context(), pool.GetDB(), cfg)
		},
	}
	cmd.Flags().String("mode", "", "migration mode: auto or drop (defaults to DB_MIGRATION_MODE)")
	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with the demo data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			clearOnly, _ := cmd.Flags().GetBool("clear")

			pool, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			db := pool.GetDB()
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("数据库迁移失败: %w", err)
			}

			if clearOnly {
				if err := database.ClearData(cmd.Context(), db); err != nil {
					return fmt.Errorf("清空数据失败: %w", err)
				}
				logger.Info("所有数据已清空")
				return nil
			}

			result, err := database.Seed(cmd.Context(), db, time.Now().UTC())
			if err != nil {
				return fmt.Errorf("写入演示数据失败: %w", err)
			}
			out, _ := json.MarshalIndent(result, "", "  ")
			fmt.Println(string(out))
			fmt.Printf("Demo password for every account: %s\n", database.DemoPassword)
			return nil
		},
	}
	cmd.Flags().Bool("clear", false, "only delete existing data")
	return cmd
}

func openDatabase(cfg *config.Config) (*database.ConnectionPool, error) {
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, fmt.Errorf("无法创建数据库连接池: %w", err)
	}
	return pool, nil
}

// printSystemInfo 打印系统信息
func printSystemInfo(pool *database.ConnectionPool) {
	logger.Info("系统信息:")
	logger.Info("- CPU核心数: %d", runtime.NumCPU())
	logger.Info("- GOMAXPROCS: %d", runtime.GOMAXPROCS(0))
	logger.Info("- Goroutines: %d", runtime.NumGoroutine())

	stats, err := pool.Stats()
	if err != nil {
		logger.Error("获取数据库连接池统计信息失败: %v", err)
		return
	}
	logger.Info("数据库连接池: %v", stats)
}
