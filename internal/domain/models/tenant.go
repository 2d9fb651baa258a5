package models

import "time"

// TenantStatus represents whether a tenant currently lives in the room
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive"
)

// Tenant is a person renting a room
type Tenant struct {
	BaseModel
	Name    string       `gorm:"type:varchar(100);not null" json:"name"`
	Email   string       `gorm:"type:varchar(150);not null" json:"email"`
	Phone   string       `gorm:"type:varchar(30)" json:"phone"`
	DNI     string       `gorm:"column:dni;type:varchar(30)" json:"dni"`
	Photo   string       `gorm:"type:varchar(255)" json:"photo,omitempty"`
	MoveIn  time.Time    `gorm:"not null" json:"moveIn"`
	MoveOut *time.Time   `json:"moveOut"`
	Status  TenantStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	RoomID  string       `gorm:"type:varchar(36);not null;index" json:"roomId"`

	// Relations
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
