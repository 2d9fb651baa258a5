package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-manager/internal/domain/models"
	"room-manager/internal/error/code"
)

func TestPropertyCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db, testConfig())
	ctx := context.Background()

	_, err := svc.CreateProperty(ctx, &models.Property{Name: "Sin ciudad", Address: "Calle 1"})
	assert.True(t, code.Is(err, code.ErrValidation))

	first, err := svc.CreateProperty(ctx, &models.Property{Name: "Calle Mayor 15", Address: "Calle Mayor 15", City: "Madrid"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.CreateProperty(ctx, &models.Property{Name: "Plaza España 8", Address: "Plaza España 8", City: "Madrid"})
	require.NoError(t, err)

	r1 := createRoom(t, db, first.ID, "102")
	createRoom(t, db, first.ID, "101")
	require.NoError(t, db.Model(r1).Update("status", models.RoomStatusOccupied).Error)

	list, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Zero(t, list[0].TotalRooms)
	assert.Equal(t, 2, list[1].TotalRooms)
	assert.Equal(t, 1, list[1].OccupiedRooms)
	assert.Equal(t, 1, list[1].AvailableRooms)
	assert.Equal(t, "101", list[1].Rooms[0].Number)

	updated, err := svc.UpdateProperty(ctx, second.ID, map[string]interface{}{"city": "Sevilla"})
	require.NoError(t, err)
	assert.Equal(t, "Sevilla", updated.City)

	err = svc.DeleteProperty(ctx, first.ID)
	assert.True(t, code.Is(err, code.ErrPropertyHasRooms))
	require.NoError(t, svc.DeleteProperty(ctx, second.ID))

	_, err = svc.GetProperty(ctx, second.ID)
	assert.True(t, code.Is(err, code.ErrPropertyNotFound))
	assert.True(t, code.IsNotFound(svc.DeleteProperty(ctx, second.ID)))
}

func TestListRoomsOrderingAndPreloads(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())
	ctx := context.Background()

	zeta := createProperty(t, db, "Zeta")
	alpha := createProperty(t, db, "Alpha")
	z1 := createRoom(t, db, zeta.ID, "101")
	a2 := createRoom(t, db, alpha.ID, "202")
	a1 := createRoom(t, db, alpha.ID, "201")

	active := createTenant(t, db, a1.ID, "pablo")
	gone := createTenant(t, db, a1.ID, "elena")
	require.NoError(t, db.Model(gone).Update("status", models.TenantStatusInactive).Error)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		createIncident(t, db, a1.ID, models.IncidentStatusOpen, models.IncidentPriorityLow, base.Add(time.Duration(i)*time.Minute))
	}
	createIncident(t, db, a1.ID, models.IncidentStatusClosed, models.IncidentPriorityLow, base.Add(time.Hour))

	rooms, err := svc.ListRooms(ctx, RoomFilter{})
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, []string{a1.ID, a2.ID, z1.ID}, []string{rooms[0].ID, rooms[1].ID, rooms[2].ID})

	require.NotNil(t, rooms[0].Property)
	assert.Equal(t, "Alpha", rooms[0].Property.Name)
	require.Len(t, rooms[0].Tenants, 1)
	assert.Equal(t, active.ID, rooms[0].Tenants[0].ID)

	require.Len(t, rooms[0].Incidents, recentRoomIncidents)
	for _, inc := range rooms[0].Incidents {
		assert.NotEqual(t, models.IncidentStatusClosed, inc.Status)
	}
	assert.True(t, rooms[0].Incidents[0].CreatedAt.After(rooms[0].Incidents[1].CreatedAt))

	filtered, err := svc.ListRooms(ctx, RoomFilter{PropertyID: zeta.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, z1.ID, filtered[0].ID)
}

func TestRoomCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig())
	ctx := context.Background()
	property := createProperty(t, db, "Gran Vía 42")

	_, err := svc.CreateRoom(ctx, &models.Room{Number: "1", Price: 300, PropertyID: "ghost"})
	assert.True(t, code.Is(err, code.ErrForeignKeyViolation))
	_, err = svc.CreateRoom(ctx, &models.Room{Number: "1", PropertyID: property.ID})
	assert.True(t, code.Is(err, code.ErrValidation))

	room, err := svc.CreateRoom(ctx, &models.Room{Number: "1", Price: 300, PropertyID: property.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, room.Floor)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)

	room, err = svc.UpdateRoom(ctx, room.ID, map[string]interface{}{"status": models.RoomStatusMaintenance, "price": 320.0})
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, room.Status)
	assert.InDelta(t, 320, room.Price, 0.001)

	_, err = svc.UpdateRoom(ctx, room.ID, map[string]interface{}{"status": models.RoomStatus("demolished")})
	assert.True(t, code.Is(err, code.ErrValidation))

	require.NoError(t, svc.DeleteRoom(ctx, room.ID))
	_, err = svc.GetRoom(ctx, room.ID)
	assert.True(t, code.Is(err, code.ErrRoomNotFound))
}

func TestCreateTenantOccupiesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	ctx := context.Background()
	room := createRoom(t, db, createProperty(t, db, "Calle Mayor 15").ID, "101")

	tenant, err := svc.CreateTenant(ctx, &models.Tenant{
		Name: "María García", Email: "maria@example.com", MoveIn: time.Now().UTC(), RoomID: room.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TenantStatusActive, tenant.Status)
	require.NotNil(t, tenant.Room)
	assert.Equal(t, "Calle Mayor 15", tenant.Room.Property.Name)

	var stored models.Room
	require.NoError(t, db.First(&stored, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, stored.Status)

	// leaving does not free the room
	_, err = svc.UpdateTenant(ctx, tenant.ID, map[string]interface{}{"status": models.TenantStatusInactive})
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, "id = ?", room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, stored.Status)
}

func TestCreateTenantUnknownRoomLeavesNoRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	ctx := context.Background()

	_, err := svc.CreateTenant(ctx, &models.Tenant{Name: "Nadie", Email: "nadie@example.com", MoveIn: time.Now().UTC(), RoomID: "ghost"})
	assert.True(t, code.Is(err, code.ErrForeignKeyViolation))

	var count int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = svc.CreateTenant(ctx, &models.Tenant{Name: "Nadie", Email: "nadie@example.com", RoomID: "ghost"})
	assert.True(t, code.Is(err, code.ErrValidation))
}

func TestListAndDeleteTenants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	ctx := context.Background()
	room := createRoom(t, db, createProperty(t, db, "Plaza España 8").ID, "201")
	other := createRoom(t, db, createProperty(t, db, "Gran Vía 42").ID, "301")

	a := createTenant(t, db, room.ID, "ana")
	createTenant(t, db, other.ID, "luis")
	require.NoError(t, db.Model(a).Update("status", models.TenantStatusInactive).Error)

	inactive, err := svc.ListTenants(ctx, TenantFilter{Status: models.TenantStatusInactive})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, a.ID, inactive[0].ID)

	inRoom, err := svc.ListTenants(ctx, TenantFilter{RoomID: other.ID})
	require.NoError(t, err)
	require.Len(t, inRoom, 1)
	assert.Equal(t, "Gran Vía 42", inRoom[0].Room.Property.Name)

	require.NoError(t, svc.DeleteTenant(ctx, a.ID))
	assert.True(t, code.Is(svc.DeleteTenant(ctx, a.ID), code.ErrTenantNotFound))
}
