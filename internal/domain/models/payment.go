package models

import "time"

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment is a single amount owed by a tenant
type Payment struct {
	BaseModel
	Amount        float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Concept       string        `gorm:"type:varchar(50)" json:"concept"` // rent, deposit, utilities...
	Status        PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	DueDate       time.Time     `gorm:"not null;index" json:"dueDate"`
	PaidDate      *time.Time    `json:"paidDate"`
	PaymentMethod string        `gorm:"type:varchar(30)" json:"paymentMethod,omitempty"`
	Reference     string        `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	TenantID      string        `gorm:"type:varchar(36);not null;index" json:"tenantId"`

	// Relations
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}
