package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"room-manager/internal/domain/models"
	"room-manager/internal/infrastructure/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:      "test-secret",
		SessionTTL:        time.Hour,
		FeaturePayments:   true,
		FeatureContracts:  true,
		SchedulerInterval: time.Hour,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func createProperty(t *testing.T, db *gorm.DB, name string) *models.Property {
	t.Helper()
	p := &models.Property{Name: name, Address: name + " 1", City: "Madrid"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createRoom(t *testing.T, db *gorm.DB, propertyID, number string) *models.Room {
	t.Helper()
	r := &models.Room{Number: number, Price: 500, PropertyID: propertyID, Status: models.RoomStatusAvailable}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createTenant(t *testing.T, db *gorm.DB, roomID, name string) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{
		Name:   name,
		Email:  fmt.Sprintf("%s@example.com", name),
		MoveIn: time.Now().UTC().AddDate(0, -1, 0),
		Status: models.TenantStatusActive,
		RoomID: roomID,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func createIncident(t *testing.T, db *gorm.DB, roomID string, status models.IncidentStatus, priority models.IncidentPriority, createdAt time.Time) *models.Incident {
	t.Helper()
	i := &models.Incident{
		Title:    fmt.Sprintf("%s-%s", status, priority),
		Category: models.IncidentCategoryOther,
		Priority: priority,
		Status:   status,
		RoomID:   roomID,
	}
	i.CreatedAt = createdAt
	require.NoError(t, db.Create(i).Error)
	return i
}

func statusPtr(s models.IncidentStatus) *models.IncidentStatus { return &s }
