package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []IncidentStatusEvent
	err    error
}

func (n *recordingNotifier) PublishStatusChange(_ context.Context, e IncidentStatusEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
	return n.err
}

type IncidentServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	notifier *recordingNotifier
	svc      InterfaceIncidentService
	ctx      context.Context
	property *models.Property
	room     *models.Room
}

func (s *IncidentServiceSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.notifier = &recordingNotifier{}
	s.svc = NewIncidentService(s.db, testConfig(), s.notifier)
	s.ctx = context.Background()
	s.property = createProperty(s.T(), s.db, "Calle Mayor 15")
	s.room = createRoom(s.T(), s.db, s.property.ID, "101")
}

func TestIncidentServiceSuite(t *testing.T) {
	suite.Run(t, new(IncidentServiceSuite))
}

func (s *IncidentServiceSuite) TestCreateIncidentDefaults() {
	incident, err := s.svc.CreateIncident(s.ctx, &models.Incident{Title: "Leak", RoomID: s.room.ID})
	s.Require().NoError(err)

	s.Equal(models.IncidentCategoryOther, incident.Category)
	s.Equal(models.IncidentPriorityMedium, incident.Priority)
	s.Equal(models.IncidentStatusOpen, incident.Status)
	s.Require().NotNil(incident.Room)
	s.Equal(s.property.ID, incident.Room.Property.ID)
}

func (s *IncidentServiceSuite) TestCreateIncidentExplicitStatus() {
	incident, err := s.svc.CreateIncident(s.ctx, &models.Incident{Title: "Old", RoomID: s.room.ID, Status: models.IncidentStatusResolved})
	s.Require().NoError(err)
	s.Equal(models.IncidentStatusResolved, incident.Status)
}

func (s *IncidentServiceSuite) TestCreateIncidentUnknownRoom() {
	_, err := s.svc.CreateIncident(s.ctx, &models.Incident{Title: "Leak", RoomID: "missing"})
	s.True(code.Is(err, code.ErrForeignKeyViolation), "got %v", err)

	missingTenant := "nobody"
	_, err = s.svc.CreateIncident(s.ctx, &models.Incident{Title: "Leak", RoomID: s.room.ID, TenantID: &missingTenant})
	s.True(code.Is(err, code.ErrForeignKeyViolation), "got %v", err)
}

func (s *IncidentServiceSuite) TestCreateIncidentRejectsUnknownPriority() {
	_, err := s.svc.CreateIncident(s.ctx, &models.Incident{Title: "Leak", RoomID: s.room.ID, Priority: "critical"})
	s.True(code.Is(err, code.ErrValidation))
}

func (s *IncidentServiceSuite) TestRecordUpdateLifecycle() {
	incident, err := s.svc.CreateIncident(s.ctx, &models.Incident{Title: "Leak", RoomID: s.room.ID})
	s.Require().NoError(err)

	_, err = s.svc.RecordUpdate(s.ctx, incident.ID, "Starting repair", statusPtr(models.IncidentStatusInProgress))
	s.Require().NoError(err)
	time.Sleep(2 * time.Millisecond)
	_, err = s.svc.RecordUpdate(s.ctx, incident.ID, "Done", statusPtr(models.IncidentStatusResolved))
	s.Require().NoError(err)

	got, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	s.Equal(models.IncidentStatusResolved, got.Status)
	s.Require().Len(got.Updates, 2)
	s.Equal("Done", got.Updates[0].Message)
	s.Equal(models.IncidentStatusResolved, *got.Updates[0].Status)
	s.Equal("Starting repair", got.Updates[1].Message)
	s.Equal(models.IncidentStatusInProgress, *got.Updates[1].Status)

	s.Require().Len(s.notifier.events, 2)
	s.Equal(models.IncidentStatusOpen, s.notifier.events[0].Previous)
	s.Equal(models.IncidentStatusResolved, s.notifier.events[1].Status)
}

func (s *IncidentServiceSuite) TestRecordUpdateNoteOnly() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusInProgress, models.IncidentPriorityHigh, time.Now().UTC())

	update, err := s.svc.RecordUpdate(s.ctx, incident.ID, "", nil)
	s.Require().NoError(err)
	s.Nil(update.Status)

	got, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	s.Equal(models.IncidentStatusInProgress, got.Status)
	s.Len(got.Updates, 1)
	s.Empty(s.notifier.events)
}

func (s *IncidentServiceSuite) TestRecordUpdatePermissiveTransitions() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusClosed, models.IncidentPriorityLow, time.Now().UTC())

	_, err := s.svc.RecordUpdate(s.ctx, incident.ID, "reopened", statusPtr(models.IncidentStatusOpen))
	s.Require().NoError(err)
	_, err = s.svc.RecordUpdate(s.ctx, incident.ID, "skip ahead", statusPtr(models.IncidentStatusResolved))
	s.Require().NoError(err)

	got, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	s.Equal(models.IncidentStatusResolved, got.Status)
}

func (s *IncidentServiceSuite) TestRecordUpdateErrors() {
	_, err := s.svc.RecordUpdate(s.ctx, "missing", "x", nil)
	s.True(code.Is(err, code.ErrIncidentNotFound), "got %v", err)

	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityLow, time.Now().UTC())
	_, err = s.svc.RecordUpdate(s.ctx, incident.ID, "x", statusPtr("done"))
	s.True(code.Is(err, code.ErrIncidentStatusInvalid))

	var count int64
	s.Require().NoError(s.db.Model(&models.IncidentUpdate{}).Count(&count).Error)
	s.Zero(count)
}

func (s *IncidentServiceSuite) TestRecordUpdateNotifierFailureKeepsUpdate() {
	s.notifier.err = errors.New("broker down")
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityLow, time.Now().UTC())

	_, err := s.svc.RecordUpdate(s.ctx, incident.ID, "x", statusPtr(models.IncidentStatusClosed))
	s.Require().NoError(err)

	got, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	s.Equal(models.IncidentStatusClosed, got.Status)
}

func (s *IncidentServiceSuite) TestRecordUpdateRollsBackWhenStatusWriteFails() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityLow, time.Now().UTC())

	s.Require().NoError(s.db.Callback().Update().Before("gorm:update").Register("test:fail_incident_update", func(tx *gorm.DB) {
		if tx.Statement.Table == "incidents" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	_, err := s.svc.RecordUpdate(s.ctx, incident.ID, "Starting repair", statusPtr(models.IncidentStatusInProgress))
	s.True(code.Is(err, code.ErrTransaction), "got %v", err)

	var count int64
	s.Require().NoError(s.db.Model(&models.IncidentUpdate{}).Count(&count).Error)
	s.Zero(count)

	var stored models.Incident
	s.Require().NoError(s.db.First(&stored, "id = ?", incident.ID).Error)
	s.Equal(models.IncidentStatusOpen, stored.Status)
	s.Empty(s.notifier.events)
}

func (s *IncidentServiceSuite) TestListIncidentsOrdering() {
	base := time.Now().UTC().Add(-time.Hour)
	low := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityLow, base.Add(4*time.Minute))
	urgent := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityUrgent, base)
	highOld := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityHigh, base.Add(time.Minute))
	highNew := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityHigh, base.Add(2*time.Minute))
	medium := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, base.Add(3*time.Minute))

	list, err := s.svc.ListIncidents(s.ctx, IncidentFilter{})
	s.Require().NoError(err)

	var ids []string
	for _, i := range list {
		ids = append(ids, i.ID)
	}
	s.Equal([]string{urgent.ID, highNew.ID, highOld.ID, medium.ID, low.ID}, ids)
}

func (s *IncidentServiceSuite) TestListIncidentsFilters() {
	now := time.Now().UTC()
	for _, st := range []models.IncidentStatus{models.IncidentStatusOpen, models.IncidentStatusInProgress, models.IncidentStatusResolved, models.IncidentStatusClosed} {
		createIncident(s.T(), s.db, s.room.ID, st, models.IncidentPriorityMedium, now)
	}

	closed, err := s.svc.ListIncidents(s.ctx, IncidentFilter{Status: models.IncidentStatusClosed})
	s.Require().NoError(err)
	s.Require().Len(closed, 1)
	s.Equal(models.IncidentStatusClosed, closed[0].Status)

	all, err := s.svc.ListIncidents(s.ctx, IncidentFilter{})
	s.Require().NoError(err)
	s.Len(all, 4)

	other := createProperty(s.T(), s.db, "Gran Vía 42")
	otherRoom := createRoom(s.T(), s.db, other.ID, "301")
	createIncident(s.T(), s.db, otherRoom.ID, models.IncidentStatusOpen, models.IncidentPriorityUrgent, now)

	byProperty, err := s.svc.ListIncidents(s.ctx, IncidentFilter{PropertyID: other.ID})
	s.Require().NoError(err)
	s.Require().Len(byProperty, 1)
	s.Equal(otherRoom.ID, byProperty[0].RoomID)
	s.Equal("Gran Vía 42", byProperty[0].Room.Property.Name)

	byRoomAndPriority, err := s.svc.ListIncidents(s.ctx, IncidentFilter{RoomID: s.room.ID, Priority: models.IncidentPriorityUrgent})
	s.Require().NoError(err)
	s.Empty(byRoomAndPriority)
}

func (s *IncidentServiceSuite) TestListIncidentsPreloadsActiveTenants() {
	createTenant(s.T(), s.db, s.room.ID, "maria")
	gone := createTenant(s.T(), s.db, s.room.ID, "carlos")
	s.Require().NoError(s.db.Model(gone).Update("status", models.TenantStatusInactive).Error)
	createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, time.Now().UTC())

	list, err := s.svc.ListIncidents(s.ctx, IncidentFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Require().Len(list[0].Room.Tenants, 1)
	s.Equal("maria", list[0].Room.Tenants[0].Name)
}

func (s *IncidentServiceSuite) TestGetIncidentIsIdempotent() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, time.Now().UTC())
	_, err := s.svc.RecordUpdate(s.ctx, incident.ID, "note", nil)
	s.Require().NoError(err)

	first, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	second, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	s.Equal(first, second)

	_, err = s.svc.GetIncident(s.ctx, "missing")
	s.True(code.Is(err, code.ErrIncidentNotFound))
}

func (s *IncidentServiceSuite) TestUpdateIncidentWritesNoAuditEntry() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, time.Now().UTC())

	got, err := s.svc.UpdateIncident(s.ctx, incident.ID, map[string]interface{}{
		"title":    "Renamed",
		"priority": models.IncidentPriorityUrgent,
	})
	s.Require().NoError(err)
	s.Equal("Renamed", got.Title)
	s.Equal(models.IncidentPriorityUrgent, got.Priority)
	s.Empty(got.Updates)

	_, err = s.svc.UpdateIncident(s.ctx, incident.ID, map[string]interface{}{"status": models.IncidentStatus("bogus")})
	s.True(code.Is(err, code.ErrIncidentStatusInvalid))

	_, err = s.svc.UpdateIncident(s.ctx, "missing", map[string]interface{}{"title": "x"})
	s.True(code.Is(err, code.ErrIncidentNotFound))
}

func (s *IncidentServiceSuite) TestUpdateIncidentChecksReferences() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, time.Now().UTC())

	_, err := s.svc.UpdateIncident(s.ctx, incident.ID, map[string]interface{}{"room_id": "does-not-exist"})
	s.True(code.Is(err, code.ErrForeignKeyViolation), "got %v", err)
	_, err = s.svc.UpdateIncident(s.ctx, incident.ID, map[string]interface{}{"tenant_id": "does-not-exist"})
	s.True(code.Is(err, code.ErrForeignKeyViolation), "got %v", err)

	got, err := s.svc.GetIncident(s.ctx, incident.ID)
	s.Require().NoError(err)
	s.Equal(s.room.ID, got.RoomID)
	s.Nil(got.TenantID)

	other := createRoom(s.T(), s.db, s.property.ID, "102")
	tenant := createTenant(s.T(), s.db, other.ID, "lucia")
	got, err = s.svc.UpdateIncident(s.ctx, incident.ID, map[string]interface{}{"room_id": other.ID, "tenant_id": tenant.ID})
	s.Require().NoError(err)
	s.Equal(other.ID, got.RoomID)
	s.Require().NotNil(got.TenantID)
	s.Equal(tenant.ID, *got.TenantID)
	s.Require().NotNil(got.Room)
	s.Equal("102", got.Room.Number)

	got, err = s.svc.UpdateIncident(s.ctx, incident.ID, map[string]interface{}{"tenant_id": ""})
	s.Require().NoError(err)
	s.Nil(got.TenantID)
	s.Nil(got.Tenant)
}

func (s *IncidentServiceSuite) TestUpdatesSameInstantNewestFirst() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, time.Now().UTC())
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for _, msg := range []string{"first", "second", "third"} {
		s.Require().NoError(s.db.Create(&models.IncidentUpdate{Message: msg, IncidentID: incident.ID, CreatedAt: at}).Error)
	}

	for i := 0; i < 3; i++ {
		got, err := s.svc.GetIncident(s.ctx, incident.ID)
		s.Require().NoError(err)
		s.Require().Len(got.Updates, 3)
		s.Equal("third", got.Updates[0].Message)
		s.Equal("second", got.Updates[1].Message)
		s.Equal("first", got.Updates[2].Message)
	}
}

func (s *IncidentServiceSuite) TestDeleteIncidentCascades() {
	incident := createIncident(s.T(), s.db, s.room.ID, models.IncidentStatusOpen, models.IncidentPriorityMedium, time.Now().UTC())
	_, err := s.svc.RecordUpdate(s.ctx, incident.ID, "note", statusPtr(models.IncidentStatusClosed))
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteIncident(s.ctx, incident.ID))

	var updates, incidents int64
	s.Require().NoError(s.db.Model(&models.IncidentUpdate{}).Count(&updates).Error)
	s.Require().NoError(s.db.Model(&models.Incident{}).Count(&incidents).Error)
	s.Zero(updates)
	s.Zero(incidents)

	err = s.svc.DeleteIncident(s.ctx, incident.ID)
	s.True(code.Is(err, code.ErrIncidentNotFound))
}

// The status write failing mid-transaction must roll the audit insert back.
func TestRecordUpdateRollbackOnMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	svc := NewIncidentService(db, testConfig(), notifier)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `incidents`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "status"}).AddRow("inc-1", "room-1", "open"))
	mock.ExpectExec("INSERT INTO `incident_updates`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `incidents` SET").
		WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectRollback()

	_, err = svc.RecordUpdate(context.Background(), "inc-1", "Starting repair", statusPtr(models.IncidentStatusInProgress))

	assert.True(t, code.Is(err, code.ErrTransaction), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, notifier.events)
}
