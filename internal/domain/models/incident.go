package models

import (
	"time"

	"gorm.io/gorm"
)

// IncidentStatus represents where an incident is in its lifecycle
type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "open"
	IncidentStatusInProgress IncidentStatus = "in_progress"
	IncidentStatusResolved   IncidentStatus = "resolved"
	IncidentStatusClosed     IncidentStatus = "closed"
)

// Valid reports whether s is one of the known status literals.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusInProgress, IncidentStatusResolved, IncidentStatusClosed:
		return true
	}
	return false
}

// IncidentCategory represents what kind of problem was reported
type IncidentCategory string

const (
	IncidentCategoryPlumbing   IncidentCategory = "plumbing"
	IncidentCategoryElectrical IncidentCategory = "electrical"
	IncidentCategoryFurniture  IncidentCategory = "furniture"
	IncidentCategoryCleaning   IncidentCategory = "cleaning"
	IncidentCategoryOther      IncidentCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c IncidentCategory) Valid() bool {
	switch c {
	case IncidentCategoryPlumbing, IncidentCategoryElectrical, IncidentCategoryFurniture,
		IncidentCategoryCleaning, IncidentCategoryOther:
		return true
	}
	return false
}

// IncidentPriority represents how urgent an incident is
type IncidentPriority string

const (
	IncidentPriorityLow    IncidentPriority = "low"
	IncidentPriorityMedium IncidentPriority = "medium"
	IncidentPriorityHigh   IncidentPriority = "high"
	IncidentPriorityUrgent IncidentPriority = "urgent"
)

// Rank orders priorities from low (1) to urgent (4). Unknown values rank 0.
func (p IncidentPriority) Rank() int {
	switch p {
	case IncidentPriorityLow:
		return 1
	case IncidentPriorityMedium:
		return 2
	case IncidentPriorityHigh:
		return 3
	case IncidentPriorityUrgent:
		return 4
	}
	return 0
}

// Valid reports whether p is one of the known priorities.
func (p IncidentPriority) Valid() bool {
	return p.Rank() > 0
}

// Incident is a problem reported for a room
type Incident struct {
	BaseModel
	Title       string           `gorm:"type:varchar(200);not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Category    IncidentCategory `gorm:"type:varchar(20);default:'other'" json:"category"`
	Priority    IncidentPriority `gorm:"type:varchar(20);default:'medium';index" json:"priority"`
	Status      IncidentStatus   `gorm:"type:varchar(20);default:'open';index" json:"status"`
	Image       string           `gorm:"type:varchar(255)" json:"image,omitempty"`
	RoomID      string           `gorm:"type:varchar(36);not null;index" json:"roomId"`
	TenantID    *string          `gorm:"type:varchar(36);index" json:"tenantId"` // reporter, optional

	// Relations
	Room    *Room            `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Tenant  *Tenant          `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Updates []IncidentUpdate `gorm:"foreignKey:IncidentID;constraint:OnDelete:CASCADE" json:"updates,omitempty"`
}

// IncidentUpdate is an immutable audit entry: a note and, optionally, the status set with it
type IncidentUpdate struct {
	ID         string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Message    string          `gorm:"type:text" json:"message"`
	Status     *IncidentStatus `gorm:"type:varchar(20)" json:"status"`
	IncidentID string          `gorm:"type:varchar(36);not null;index" json:"incidentId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// BeforeCreate assigns a time-ordered id when the caller did not set one.
func (u *IncidentUpdate) BeforeCreate(tx *gorm.DB) error {
	if u.ID != "" {
		return nil
	}
	id, err := newID()
	u.ID = id
	return err
}
