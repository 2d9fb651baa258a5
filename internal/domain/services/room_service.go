package services

import (
	"context"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
)

// recentRoomIncidents is how many open incidents the room list carries per room.
const recentRoomIncidents = 3

// InterfaceRoomService defines the room operations
type InterfaceRoomService interface {
	ListRooms(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// RoomService 提供房间相关的服务
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService creates the room service
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
	}
}

func openIncidents(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", models.IncidentStatusClosed).Scopes(NewestFirst("incidents"))
}

// 1 ListRooms returns rooms by property name and number, with active tenants
// and the latest non-closed incidents
func (s *RoomService) ListRooms(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.DB.WithContext(ctx).
		Joins("Property").
		Scopes(filter.Scope, OrderRooms).
		Preload("Tenants", activeTenants).
		Preload("Incidents", openIncidents).
		Find(&rooms).Error
	if err != nil {
		return nil, dbError(err)
	}

	// preload cannot limit per parent
	for i := range rooms {
		if len(rooms[i].Incidents) > recentRoomIncidents {
			rooms[i].Incidents = rooms[i].Incidents[:recentRoomIncidents]
		}
	}
	return rooms, nil
}

// 2 GetRoom returns one room with its property, active tenants and open incidents
func (s *RoomService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).
		Preload("Property").
		Preload("Tenants", activeTenants).
		Preload("Incidents", openIncidents).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, lookupError(err, code.ErrRoomNotFound)
	}
	return &room, nil
}

// 3 CreateRoom stores a room in an existing property
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if room.Number == "" {
		return nil, code.New(code.ErrValidation, "number is required")
	}
	if room.Price <= 0 {
		return nil, code.New(code.ErrValidation, "price must be greater than zero")
	}
	if room.Floor == 0 {
		room.Floor = 1
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := validateRoomStatus(room.Status); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.DB, &models.Property{}, "propertyId", room.PropertyID); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Omit("Property", "Tenants", "Incidents").Create(room).Error; err != nil {
		return nil, dbError(err)
	}
	return s.GetRoom(ctx, room.ID)
}

// 4 UpdateRoom applies updates to a room
func (s *RoomService) UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if status, ok := updates["status"].(models.RoomStatus); ok {
		if err := validateRoomStatus(status); err != nil {
			return nil, err
		}
	}
	if price, ok := updates["price"].(float64); ok && price <= 0 {
		return nil, code.New(code.ErrValidation, "price must be greater than zero")
	}
	if propertyID, ok := updates["property_id"].(string); ok {
		if err := requireRef(ctx, s.DB, &models.Property{}, "propertyId", propertyID); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.Room{}).Where("id = ?", room.ID).Updates(updates).Error; err != nil {
			return nil, dbError(err)
		}
	}
	return s.GetRoom(ctx, id)
}

// 5 DeleteRoom removes a room
func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Room{})
	if res.Error != nil {
		return dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.New(code.ErrRoomNotFound, "")
	}
	return nil
}

func validateRoomStatus(status models.RoomStatus) error {
	switch status {
	case models.RoomStatusAvailable, models.RoomStatusOccupied, models.RoomStatusMaintenance:
		return nil
	}
	return code.Newf(code.ErrValidation, "invalid room status %q", status)
}
