package services

import (
	"context"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
)

// InterfacePropertyService defines the property operations
type InterfacePropertyService interface {
	ListProperties(ctx context.Context) ([]models.PropertyWithStats, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error)
	UpdateProperty(ctx context.Context, id string, updates map[string]interface{}) (*models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

// PropertyService 提供物业相关的服务
type PropertyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPropertyService creates the property service
func NewPropertyService(db *gorm.DB, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{
		DB:     db,
		Config: cfg,
	}
}

// 1 ListProperties returns properties newest first with their room counts
func (s *PropertyService) ListProperties(ctx context.Context) ([]models.PropertyWithStats, error) {
	var properties []models.Property
	err := s.DB.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Scopes(NewestFirst("properties")).
		Find(&properties).Error
	if err != nil {
		return nil, dbError(err)
	}

	result := make([]models.PropertyWithStats, 0, len(properties))
	for _, p := range properties {
		stats := models.PropertyWithStats{Property: p, TotalRooms: len(p.Rooms)}
		for _, r := range p.Rooms {
			switch r.Status {
			case models.RoomStatusOccupied:
				stats.OccupiedRooms++
			case models.RoomStatusAvailable:
				stats.AvailableRooms++
			case models.RoomStatusMaintenance:
				stats.MaintenanceRooms++
			}
		}
		result = append(result, stats)
	}
	return result, nil
}

// 2 GetProperty returns one property with its rooms
func (s *PropertyService) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := s.DB.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Where("id = ?", id).
		First(&property).Error
	if err != nil {
		return nil, lookupError(err, code.ErrPropertyNotFound)
	}
	return &property, nil
}

// 3 CreateProperty stores a property
func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error) {
	if property.Name == "" || property.Address == "" || property.City == "" {
		return nil, code.New(code.ErrValidation, "name, address and city are required")
	}
	if err := s.DB.WithContext(ctx).Omit("Rooms").Create(property).Error; err != nil {
		return nil, dbError(err)
	}
	return property, nil
}

// 4 UpdateProperty applies updates to a property
func (s *PropertyService) UpdateProperty(ctx context.Context, id string, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.Property{}).Where("id = ?", property.ID).Updates(updates).Error; err != nil {
			return nil, dbError(err)
		}
	}
	return s.GetProperty(ctx, id)
}

// 5 DeleteProperty removes a property that no longer has rooms
func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if len(property.Rooms) > 0 {
		return code.Newf(code.ErrPropertyHasRooms, "property still has %d rooms", len(property.Rooms))
	}
	return dbError(s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Property{}).Error)
}
