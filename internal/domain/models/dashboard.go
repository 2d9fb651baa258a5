package models

// DashboardSnapshot is the single-call summary shown on the admin dashboard.
// Sub-aggregates are computed independently and are not mutually consistent.
type DashboardSnapshot struct {
	Overview            DashboardOverview `json:"overview"`
	Rooms               RoomBreakdown     `json:"rooms"`
	IncidentsByCategory []CategoryCount   `json:"incidentsByCategory"`
	IncidentsByPriority []PriorityCount   `json:"incidentsByPriority"`
	RecentIncidents     []Incident        `json:"recentIncidents"`
	Payments            PaymentSummary    `json:"payments"`
	Contracts           ContractSummary   `json:"contracts"`
}

type DashboardOverview struct {
	TotalProperties     int64 `json:"totalProperties"`
	TotalRooms          int64 `json:"totalRooms"`
	TotalTenants        int64 `json:"totalTenants"`
	TotalIncidents      int64 `json:"totalIncidents"`
	OpenIncidents       int64 `json:"openIncidents"`
	InProgressIncidents int64 `json:"inProgressIncidents"`
}

type RoomBreakdown struct {
	Occupied    int64 `json:"occupied"`
	Available   int64 `json:"available"`
	Maintenance int64 `json:"maintenance"`
}

type CategoryCount struct {
	Category IncidentCategory `json:"category"`
	Count    int64            `json:"count"`
}

type PriorityCount struct {
	Priority IncidentPriority `json:"priority"`
	Count    int64            `json:"count"`
}

// PaymentSummary zero value (with an empty, non-nil list) is the fallback
// when payments are not provisioned.
type PaymentSummary struct {
	Total            int64     `json:"total"`
	Pending          int64     `json:"pending"`
	Paid             int64     `json:"paid"`
	Overdue          int64     `json:"overdue"`
	PendingAmount    float64   `json:"pendingAmount"`
	PaidThisMonth    float64   `json:"paidThisMonth"`
	UpcomingPayments []Payment `json:"upcomingPayments"`
}

type ContractSummary struct {
	Active       int64   `json:"active"`
	Expiring     int64   `json:"expiring"`
	TotalDeposit float64 `json:"totalDeposit"`
}

// EmptyPaymentSummary returns the zeroed payments aggregate.
func EmptyPaymentSummary() PaymentSummary {
	return PaymentSummary{UpcomingPayments: []Payment{}}
}
