package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/logger"
)

// InterfaceIncidentService defines the incident lifecycle operations
type InterfaceIncidentService interface {
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id string, updates map[string]interface{}) (*models.Incident, error)
	RecordUpdate(ctx context.Context, incidentID, message string, status *models.IncidentStatus) (*models.IncidentUpdate, error)
	DeleteIncident(ctx context.Context, id string) error
}

// IncidentService tracks incidents and their audit trail
type IncidentService struct {
	DB       *gorm.DB
	Config   *config.Config
	Notifier IncidentNotifier
}

// NewIncidentService creates the incident service. A nil notifier drops events.
func NewIncidentService(db *gorm.DB, cfg *config.Config, notifier IncidentNotifier) InterfaceIncidentService {
	if notifier == nil {
		notifier = NopIncidentNotifier{}
	}
	return &IncidentService{
		DB:       db,
		Config:   cfg,
		Notifier: notifier,
	}
}

// preloadIncidentDetail loads room, property, active room tenants, reporter and
// the updates newest first.
func preloadIncidentDetail(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Room.Property").
		Preload("Room.Tenants", activeTenants).
		Preload("Tenant").
		Preload("Updates", NewestFirst("incident_updates"))
}

// 1 ListIncidents returns incidents matching filter, most urgent and newest first
func (s *IncidentService) ListIncidents(ctx context.Context, filter IncidentFilter) ([]models.Incident, error) {
	incidents := []models.Incident{}
	err := s.DB.WithContext(ctx).
		Scopes(filter.Scope, OrderIncidents, preloadIncidentDetail).
		Find(&incidents).Error
	if err != nil {
		return nil, dbError(err)
	}
	return incidents, nil
}

// 2 GetIncident returns one incident with its relations
func (s *IncidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	var incident models.Incident
	err := s.DB.WithContext(ctx).
		Scopes(preloadIncidentDetail).
		Where("incidents.id = ?", id).
		First(&incident).Error
	if err != nil {
		return nil, lookupError(err, code.ErrIncidentNotFound)
	}
	return &incident, nil
}

// 3 CreateIncident stores a new incident, filling the default category,
// priority and status
func (s *IncidentService) CreateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	if incident.Title == "" {
		return nil, code.New(code.ErrValidation, "title is required")
	}
	if incident.Category == "" {
		incident.Category = models.IncidentCategoryOther
	}
	if incident.Priority == "" {
		incident.Priority = models.IncidentPriorityMedium
	}
	if incident.Status == "" {
		incident.Status = models.IncidentStatusOpen
	}
	if err := validateIncidentEnums(incident.Status, incident.Category, incident.Priority); err != nil {
		return nil, err
	}

	if err := requireRef(ctx, s.DB, &models.Room{}, "roomId", incident.RoomID); err != nil {
		return nil, err
	}
	if incident.TenantID != nil && *incident.TenantID != "" {
		if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", *incident.TenantID); err != nil {
			return nil, err
		}
	} else {
		incident.TenantID = nil
	}

	if err := s.DB.WithContext(ctx).Omit("Room", "Tenant", "Updates").Create(incident).Error; err != nil {
		return nil, dbError(err)
	}
	return s.GetIncident(ctx, incident.ID)
}

// 4 UpdateIncident applies a partial update. No audit entry is written;
// status changes that need one go through RecordUpdate.
func (s *IncidentService) UpdateIncident(ctx context.Context, id string, updates map[string]interface{}) (*models.Incident, error) {
	incident, err := s.GetIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	status, _ := updates["status"].(models.IncidentStatus)
	category, _ := updates["category"].(models.IncidentCategory)
	priority, _ := updates["priority"].(models.IncidentPriority)
	if err := validateIncidentEnums(status, category, priority); err != nil {
		return nil, err
	}
	if roomID, ok := updates["room_id"].(string); ok {
		if err := requireRef(ctx, s.DB, &models.Room{}, "roomId", roomID); err != nil {
			return nil, err
		}
	}
	// an empty tenantId detaches the reporter
	if tenantID, ok := updates["tenant_id"].(string); ok {
		if tenantID == "" {
			updates["tenant_id"] = nil
		} else if err := requireRef(ctx, s.DB, &models.Tenant{}, "tenantId", tenantID); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.Incident{}).Where("id = ?", incident.ID).Updates(updates).Error; err != nil {
			return nil, dbError(err)
		}
	}
	return s.GetIncident(ctx, id)
}

// 5 RecordUpdate appends an audit entry and, when status is set, moves the
// incident to that status. Both writes commit together or not at all.
// Any status may follow any other.
func (s *IncidentService) RecordUpdate(ctx context.Context, incidentID, message string, status *models.IncidentStatus) (*models.IncidentUpdate, error) {
	if status != nil && !status.Valid() {
		return nil, code.Newf(code.ErrIncidentStatusInvalid, "invalid incident status %q", *status)
	}

	var (
		update   models.IncidentUpdate
		incident models.Incident
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", incidentID).First(&incident).Error; err != nil {
			return lookupError(err, code.ErrIncidentNotFound)
		}

		update = models.IncidentUpdate{
			Message:    message,
			Status:     status,
			IncidentID: incidentID,
		}
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		if status != nil {
			res := tx.Model(&models.Incident{}).Where("id = ?", incidentID).Updates(map[string]interface{}{
				"status":     *status,
				"updated_at": tx.NowFunc(),
			})
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		if code.IsNotFound(err) {
			return nil, err
		}
		return nil, code.Wrap(code.ErrTransaction, err)
	}

	if status != nil {
		s.notify(ctx, IncidentStatusEvent{
			IncidentID: incident.ID,
			RoomID:     incident.RoomID,
			Previous:   incident.Status,
			Status:     *status,
			Message:    message,
			At:         update.CreatedAt,
		})
	}
	return &update, nil
}

// notify publishes after commit; failures never undo the recorded update.
func (s *IncidentService) notify(ctx context.Context, event IncidentStatusEvent) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	if err := s.Notifier.PublishStatusChange(ctx, event); err != nil {
		logger.Warning("publishing status change of incident %s failed: %v", event.IncidentID, err)
	}
}

// 6 DeleteIncident removes an incident and its updates
func (s *IncidentService) DeleteIncident(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var incident models.Incident
		if err := tx.Where("id = ?", id).First(&incident).Error; err != nil {
			return lookupError(err, code.ErrIncidentNotFound)
		}
		if err := tx.Where("incident_id = ?", id).Delete(&models.IncidentUpdate{}).Error; err != nil {
			return dbError(err)
		}
		return dbError(tx.Delete(&incident).Error)
	})
}

func validateIncidentEnums(status models.IncidentStatus, category models.IncidentCategory, priority models.IncidentPriority) error {
	if status != "" && !status.Valid() {
		return code.Newf(code.ErrIncidentStatusInvalid, "invalid incident status %q", status)
	}
	if category != "" && !category.Valid() {
		return code.Newf(code.ErrValidation, "invalid incident category %q", category)
	}
	if priority != "" && !priority.Valid() {
		return code.Newf(code.ErrValidation, "invalid incident priority %q", priority)
	}
	return nil
}
