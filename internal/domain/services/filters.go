package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"room-manager/internal/domain/models"
)

// Window sizes of the "expiring" and "upcoming" list flags.
const (
	ContractExpiringDays = 30
	PaymentUpcomingDays  = 7
)

// Eq constrains column to value. An empty value leaves the query unconstrained.
func Eq(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(clause.Eq{Column: clause.Column{Name: column, Raw: true}, Value: value})
	}
}

// IncidentFilter holds the equality filters of the incident list.
type IncidentFilter struct {
	Status     models.IncidentStatus
	Priority   models.IncidentPriority
	RoomID     string
	PropertyID string
}

// Scope applies the filter; PropertyID matches through the incident's room.
func (f IncidentFilter) Scope(db *gorm.DB) *gorm.DB {
	db = db.Scopes(
		Eq("incidents.status", string(f.Status)),
		Eq("incidents.priority", string(f.Priority)),
		Eq("incidents.room_id", f.RoomID),
	)
	if f.PropertyID != "" {
		rooms := db.Session(&gorm.Session{NewDB: true}).Model(&models.Room{}).Select("id").Where("property_id = ?", f.PropertyID)
		db = db.Where("incidents.room_id IN (?)", rooms)
	}
	return db
}

// incidentPriorityRank mirrors IncidentPriority.Rank in SQL.
const incidentPriorityRank = "CASE incidents.priority WHEN 'urgent' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

// OrderIncidents sorts by priority (urgent first), then newest first.
func OrderIncidents(db *gorm.DB) *gorm.DB {
	return db.Order(incidentPriorityRank + " DESC").Scopes(NewestFirst("incidents"))
}

// NewestFirst orders by created_at descending. Rows created in the same
// clock tick fall back to the id, which is time ordered.
func NewestFirst(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}

// PaymentFilter holds the filters of the payment list.
type PaymentFilter struct {
	Status   models.PaymentStatus
	TenantID string
	Upcoming bool
}

// Scope applies the equality part of the filter.
func (f PaymentFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(Eq("payments.status", string(f.Status)), Eq("payments.tenant_id", f.TenantID))
}

// ContractFilter holds the filters of the contract list.
type ContractFilter struct {
	Status   models.ContractStatus
	TenantID string
	Expiring bool
}

// Scope applies the equality part of the filter.
func (f ContractFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(Eq("contracts.status", string(f.Status)), Eq("contracts.tenant_id", f.TenantID))
}

// RoomFilter holds the filters of the room list.
type RoomFilter struct {
	PropertyID string
	Status     models.RoomStatus
}

// Scope applies the filter.
func (f RoomFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(Eq("rooms.property_id", f.PropertyID), Eq("rooms.status", string(f.Status)))
}

// OrderRooms sorts by property name, then room number. It needs the Property join.
func OrderRooms(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Table: "Property", Name: "name"}}).
		Order("rooms.number ASC")
}

// TenantFilter holds the filters of the tenant list.
type TenantFilter struct {
	Status models.TenantStatus
	RoomID string
}

// Scope applies the filter.
func (f TenantFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Scopes(Eq("tenants.status", string(f.Status)), Eq("tenants.room_id", f.RoomID))
}

// preloadTenantRoom loads Tenant -> Room -> Property.
func preloadTenantRoom(db *gorm.DB) *gorm.DB {
	return db.Preload("Tenant.Room.Property")
}

// activeTenants restricts a Tenants preload to active tenants.
func activeTenants(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.TenantStatusActive)
}

// inWindow reports whether from <= t <= from+days, bounds inclusive.
func inWindow(t, from time.Time, days int) bool {
	return !t.Before(from) && !t.After(from.AddDate(0, 0, days))
}

// ContractExpiringSoon reports whether an active contract ends within the next 30 days.
func ContractExpiringSoon(c models.Contract, now time.Time) bool {
	return c.Status == models.ContractStatusActive && inWindow(c.EndDate, now, ContractExpiringDays)
}

// PaymentUpcoming reports whether a pending payment falls due within the next 7 days.
func PaymentUpcoming(p models.Payment, now time.Time) bool {
	return p.Status == models.PaymentStatusPending && inWindow(p.DueDate, now, PaymentUpcomingDays)
}

// ExpiringContracts keeps the contracts for which ContractExpiringSoon holds, preserving order.
func ExpiringContracts(contracts []models.Contract, now time.Time) []models.Contract {
	out := make([]models.Contract, 0, len(contracts))
	for _, c := range contracts {
		if ContractExpiringSoon(c, now) {
			out = append(out, c)
		}
	}
	return out
}

// UpcomingPayments keeps the payments for which PaymentUpcoming holds, preserving order.
func UpcomingPayments(payments []models.Payment, now time.Time) []models.Payment {
	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if PaymentUpcoming(p, now) {
			out = append(out, p)
		}
	}
	return out
}
