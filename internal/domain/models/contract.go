package models

import "time"

// ContractStatus represents the lifecycle state of a lease contract
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
	ContractStatusCancelled  ContractStatus = "cancelled"
)

// Contract is a lease agreement with a tenant
type Contract struct {
	BaseModel
	ContractNumber  string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"contractNumber"`
	StartDate       time.Time      `gorm:"not null" json:"startDate"`
	EndDate         time.Time      `gorm:"not null;index" json:"endDate"`
	MonthlyRent     float64        `gorm:"type:decimal(10,2);not null" json:"monthlyRent"`
	Deposit         float64        `gorm:"type:decimal(10,2);not null" json:"deposit"`
	DepositPaid     bool           `gorm:"default:false" json:"depositPaid"`
	DepositReturned bool           `gorm:"default:false" json:"depositReturned"`
	Terms           string         `gorm:"type:text" json:"terms,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`
	Status          ContractStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	TenantID        string         `gorm:"type:varchar(36);not null;index" json:"tenantId"`

	// Relations
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}
