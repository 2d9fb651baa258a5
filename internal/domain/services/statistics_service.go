package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/logger"
)

// PaymentStats computes the payments block of the dashboard.
type PaymentStats interface {
	PaymentSummary(ctx context.Context, asOf time.Time) (*models.PaymentSummary, error)
}

// ContractStats computes the contracts block of the dashboard.
type ContractStats interface {
	ContractSummary(ctx context.Context, asOf time.Time) (*models.ContractSummary, error)
}

// InterfaceStatisticsService defines the dashboard aggregation
type InterfaceStatisticsService interface {
	ComputeDashboard(ctx context.Context, asOf time.Time) (*models.DashboardSnapshot, error)
}

// StatisticsService builds dashboard snapshots. Payments and Contracts are
// optional; when nil or failing their blocks are zeroed.
type StatisticsService struct {
	DB        *gorm.DB
	Config    *config.Config
	Payments  PaymentStats
	Contracts ContractStats
	Now       func() time.Time
}

// NewStatisticsService creates the statistics service
func NewStatisticsService(db *gorm.DB, cfg *config.Config, payments PaymentStats, contracts ContractStats) InterfaceStatisticsService {
	return &StatisticsService{
		DB:        db,
		Config:    cfg,
		Payments:  payments,
		Contracts: contracts,
		Now:       time.Now,
	}
}

// ComputeDashboard returns a snapshot as of asOf; zero asOf means now.
// Each block is read independently, nothing is cached.
func (s *StatisticsService) ComputeDashboard(ctx context.Context, asOf time.Time) (*models.DashboardSnapshot, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	asOf = asOf.UTC()
	db := s.DB.WithContext(ctx)
	snapshot := &models.DashboardSnapshot{}

	counts := []struct {
		dst   *int64
		model interface{}
		query []interface{}
	}{
		{&snapshot.Overview.TotalProperties, &models.Property{}, nil},
		{&snapshot.Overview.TotalRooms, &models.Room{}, nil},
		{&snapshot.Overview.TotalTenants, &models.Tenant{}, []interface{}{"status = ?", models.TenantStatusActive}},
		{&snapshot.Overview.TotalIncidents, &models.Incident{}, nil},
		{&snapshot.Overview.OpenIncidents, &models.Incident{}, []interface{}{"status = ?", models.IncidentStatusOpen}},
		{&snapshot.Overview.InProgressIncidents, &models.Incident{}, []interface{}{"status = ?", models.IncidentStatusInProgress}},
		{&snapshot.Rooms.Occupied, &models.Room{}, []interface{}{"status = ?", models.RoomStatusOccupied}},
		{&snapshot.Rooms.Available, &models.Room{}, []interface{}{"status = ?", models.RoomStatusAvailable}},
		{&snapshot.Rooms.Maintenance, &models.Room{}, []interface{}{"status = ?", models.RoomStatusMaintenance}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if len(c.query) > 0 {
			q = q.Where(c.query[0], c.query[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, dbError(err)
		}
	}

	snapshot.IncidentsByCategory = []models.CategoryCount{}
	if err := db.Model(&models.Incident{}).
		Select("category, COUNT(*) AS count").
		Group("category").Order("category").
		Scan(&snapshot.IncidentsByCategory).Error; err != nil {
		return nil, dbError(err)
	}

	snapshot.IncidentsByPriority = []models.PriorityCount{}
	if err := db.Model(&models.Incident{}).
		Select("priority, COUNT(*) AS count").
		Group("priority").Order("priority").
		Scan(&snapshot.IncidentsByPriority).Error; err != nil {
		return nil, dbError(err)
	}

	snapshot.RecentIncidents = []models.Incident{}
	if err := db.Preload("Room.Property").
		Scopes(NewestFirst("incidents")).Limit(5).
		Find(&snapshot.RecentIncidents).Error; err != nil {
		return nil, dbError(err)
	}

	snapshot.Payments = s.paymentSummary(ctx, asOf)
	snapshot.Contracts = s.contractSummary(ctx, asOf)

	return snapshot, nil
}

func (s *StatisticsService) paymentSummary(ctx context.Context, asOf time.Time) models.PaymentSummary {
	if s.Payments == nil {
		return models.EmptyPaymentSummary()
	}
	summary, err := s.Payments.PaymentSummary(ctx, asOf)
	if err != nil || summary == nil {
		logger.Warning("payments summary unavailable, using defaults: %v", err)
		return models.EmptyPaymentSummary()
	}
	if summary.UpcomingPayments == nil {
		summary.UpcomingPayments = []models.Payment{}
	}
	return *summary
}

func (s *StatisticsService) contractSummary(ctx context.Context, asOf time.Time) models.ContractSummary {
	if s.Contracts == nil {
		return models.ContractSummary{}
	}
	summary, err := s.Contracts.ContractSummary(ctx, asOf)
	if err != nil || summary == nil {
		logger.Warning("contracts summary unavailable, using defaults: %v", err)
		return models.ContractSummary{}
	}
	return *summary
}

// monthRange returns [first instant of t's month, first instant of the next month).
func monthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
