package models

// UserRole represents what a user may do
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleTenant UserRole = "tenant"
)

// User is an account able to log in
type User struct {
	BaseModel
	Email    string   `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Password string   `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Name     string   `gorm:"type:varchar(100)" json:"name"`
	Role     UserRole `gorm:"type:varchar(20);default:'tenant'" json:"role"`
	TenantID *string  `gorm:"type:varchar(36)" json:"tenantId"`

	// Relations
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}
