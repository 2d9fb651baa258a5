package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
)

// InterfaceTenantService defines the tenant operations
type InterfaceTenantService interface {
	ListTenants(ctx context.Context, filter TenantFilter) ([]models.Tenant, error)
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)
	CreateTenant(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, id string, updates map[string]interface{}) (*models.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

// TenantService 提供租客相关的服务
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService creates the tenant service
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

// 1 ListTenants returns tenants newest first
func (s *TenantService) ListTenants(ctx context.Context, filter TenantFilter) ([]models.Tenant, error) {
	tenants := []models.Tenant{}
	err := s.DB.WithContext(ctx).
		Scopes(filter.Scope).
		Preload("Room.Property").
		Scopes(NewestFirst("tenants")).
		Find(&tenants).Error
	if err != nil {
		return nil, dbError(err)
	}
	return tenants, nil
}

// 2 GetTenant returns one tenant with room and property
func (s *TenantService) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.WithContext(ctx).Preload("Room.Property").Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, lookupError(err, code.ErrTenantNotFound)
	}
	return &tenant, nil
}

// 3 CreateTenant stores a tenant and marks its room occupied in one transaction.
// The room status is not revisited when the tenant later leaves.
func (s *TenantService) CreateTenant(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	if tenant.Name == "" || tenant.Email == "" {
		return nil, code.New(code.ErrValidation, "name and email are required")
	}
	if tenant.MoveIn.IsZero() {
		return nil, code.New(code.ErrValidation, "moveIn is required")
	}
	if tenant.Status == "" {
		tenant.Status = models.TenantStatusActive
	}
	if err := validateTenantStatus(tenant.Status); err != nil {
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(ctx, tx, &models.Room{}, "roomId", tenant.RoomID); err != nil {
			return err
		}
		if err := tx.Omit("Room").Create(tenant).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", tenant.RoomID).Update("status", models.RoomStatusOccupied).Error
	})
	if err != nil {
		var ce *code.Error
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, code.Wrap(code.ErrTransaction, err)
	}
	return s.GetTenant(ctx, tenant.ID)
}

// 4 UpdateTenant applies updates to a tenant
func (s *TenantService) UpdateTenant(ctx context.Context, id string, updates map[string]interface{}) (*models.Tenant, error) {
	tenant, err := s.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	if status, ok := updates["status"].(models.TenantStatus); ok {
		if err := validateTenantStatus(status); err != nil {
			return nil, err
		}
	}
	if roomID, ok := updates["room_id"].(string); ok {
		if err := requireRef(ctx, s.DB, &models.Room{}, "roomId", roomID); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.Tenant{}).Where("id = ?", tenant.ID).Updates(updates).Error; err != nil {
			return nil, dbError(err)
		}
	}
	return s.GetTenant(ctx, id)
}

// 5 DeleteTenant removes a tenant
func (s *TenantService) DeleteTenant(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Tenant{})
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.New(code.ErrTenantNotFound, "")
	}
	return nil
}

func validateTenantStatus(status models.TenantStatus) error {
	switch status {
	case models.TenantStatusActive, models.TenantStatusInactive:
		return nil
	}
	return code.Newf(code.ErrValidation, "invalid tenant status %q", status)
}
