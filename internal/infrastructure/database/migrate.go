package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/logger"
	"room-manager/pkg/utils"
)

// Migrate runs the schema migration selected by DB_MIGRATION_MODE.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case "drop":
		logger.Warning("在drop模式下运行，将删除并重建所有表")
		return DropAndRecreateTables(db)
	case "auto", "":
		logger.Info("在标准模式下运行，将只添加新列和新表")
		return AutoMigrate(db)
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}
}

// AutoMigrate 自动迁移所有模型（只添加新列和新表）
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return err
	}
	logger.Info("Database migration completed")
	return nil
}

// DropAndRecreateTables 删除并重建所有表
func DropAndRecreateTables(db *gorm.DB) error {
	all := models.AllModels()
	// children first
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return AutoMigrate(db)
}

// EnsureAdminExists creates the default admin when no admin account exists.
// It does nothing when DEFAULT_ADMIN_PASSWORD is empty.
func EnsureAdminExists(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.DefaultAdminPassword == "" {
		logger.Warning("no admin account exists and DEFAULT_ADMIN_PASSWORD is empty")
		return nil
	}

	hash, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}

	admin := models.User{
		Email:    cfg.DefaultAdminEmail,
		Password: hash,
		Name:     "Administrador",
		Role:     models.UserRoleAdmin,
	}

	var existing models.User
	err = db.WithContext(ctx).Where("email = ?", admin.Email).First(&existing).Error
	switch {
	case err == nil:
		return db.WithContext(ctx).Model(&existing).Update("role", models.UserRoleAdmin).Error
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("创建默认管理员失败: %w", err)
	}
	logger.Info("已创建默认管理员账户: %s", admin.Email)
	return nil
}
