package models

// Property is a building or flat that owns rooms.
type Property struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Address     string `gorm:"type:varchar(255);not null" json:"address"`
	City        string `gorm:"type:varchar(100);not null" json:"city"`
	PostalCode  string `gorm:"type:varchar(20)" json:"postalCode"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(255)" json:"image,omitempty"`

	// Relations
	Rooms []Room `gorm:"foreignKey:PropertyID;constraint:OnDelete:RESTRICT" json:"rooms,omitempty"`
}

// PropertyWithStats is a property together with its room occupancy counts.
type PropertyWithStats struct {
	Property
	TotalRooms       int `json:"totalRooms"`
	OccupiedRooms    int `json:"occupiedRooms"`
	AvailableRooms   int `json:"availableRooms"`
	MaintenanceRooms int `json:"maintenanceRooms"`
}
