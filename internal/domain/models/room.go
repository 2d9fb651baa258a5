package models

// RoomStatus represents the occupancy state of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room is a rentable unit inside a property
type Room struct {
	BaseModel
	Number     string     `gorm:"type:varchar(20);not null" json:"number"`
	Name       string     `gorm:"type:varchar(100)" json:"name"`
	Floor      int        `gorm:"default:1" json:"floor"`
	Price      float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Size       *float64   `gorm:"type:decimal(8,2)" json:"size"`
	Amenities  StringList `gorm:"type:text" json:"amenities"`
	Status     RoomStatus `gorm:"type:varchar(20);default:'available';index" json:"status"`
	Image      string     `gorm:"type:varchar(255)" json:"image,omitempty"`
	PropertyID string     `gorm:"type:varchar(36);not null;index" json:"propertyId"`

	// Relations
	Property  *Property  `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenants   []Tenant   `gorm:"foreignKey:RoomID" json:"tenants,omitempty"`
	Incidents []Incident `gorm:"foreignKey:RoomID" json:"incidents,omitempty"`
}
