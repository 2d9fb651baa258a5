package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"room-manager/internal/domain/models"
	"room-manager/pkg/logger"
	"room-manager/pkg/utils"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "123456"

// SeedResult summarises what Seed inserted.
type SeedResult struct {
	Properties int    `json:"properties"`
	Rooms      int    `json:"rooms"`
	Tenants    int    `json:"tenants"`
	Contracts  int    `json:"contracts"`
	Payments   int    `json:"payments"`
	Incidents  int    `json:"incidents"`
	AdminEmail string `json:"adminEmail"`
}

// ClearData deletes every row, children first.
func ClearData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return clearTables(tx)
	})
}

func clearTables(tx *gorm.DB) error {
	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(all[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// Seed replaces all data with the demo data set. Payment due dates are laid
// out around now: two paid months behind, the current and next month pending.
func Seed(ctx context.Context, db *gorm.DB, now time.Time) (*SeedResult, error) {
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{AdminEmail: "admin@roommanager.com"}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearTables(tx); err != nil {
			return err
		}

		properties := []models.Property{
			{Name: "Calle Mayor 15", Address: "Calle Mayor 15, 2º", City: "Madrid", PostalCode: "28013", Description: "Piso luminoso en el centro de Madrid"},
			{Name: "Plaza España 8", Address: "Plaza España 8, 1º", City: "Madrid", PostalCode: "28008", Description: "Apartamento moderno"},
			{Name: "Gran Vía 42", Address: "Gran Vía 42, 3º", City: "Madrid", PostalCode: "28013", Description: "Piso reformado"},
		}
		if err := tx.Create(&properties).Error; err != nil {
			return err
		}

		room := func(p int, number, name string, floor int, price, size float64, status models.RoomStatus) models.Room {
			return models.Room{Number: number, Name: name, Floor: floor, Price: price, Size: ptr(size), Status: status,
				Amenities: models.StringList{"wifi"}, PropertyID: properties[p].ID}
		}
		rooms := []models.Room{
			room(0, "101", "Habitación Interior", 1, 450, 12, models.RoomStatusOccupied),
			room(0, "102", "Habitación Exterior", 1, 550, 15, models.RoomStatusOccupied),
			room(0, "103", "Habitación Grande", 1, 600, 18, models.RoomStatusAvailable),
			room(1, "201", "Suite Principal", 2, 700, 20, models.RoomStatusOccupied),
			room(1, "202", "Habitación Estándar", 2, 500, 14, models.RoomStatusAvailable),
			room(2, "301", "Ático", 3, 800, 25, models.RoomStatusOccupied),
			room(2, "302", "Habitación Básica", 3, 450, 12, models.RoomStatusOccupied),
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		tenant := func(r int, name, email, phone, dni string, moveIn time.Time) models.Tenant {
			return models.Tenant{Name: name, Email: email, Phone: phone, DNI: dni, MoveIn: moveIn,
				Status: models.TenantStatusActive, RoomID: rooms[r].ID}
		}
		tenants := []models.Tenant{
			tenant(0, "María García", "maria@email.com", "+34 612 345 678", "12345678A", date(2024, 1, 15)),
			tenant(1, "Carlos Rodríguez", "carlos@email.com", "+34 623 456 789", "23456789B", date(2024, 2, 1)),
			tenant(3, "Ana Martínez", "ana@email.com", "+34 634 567 890", "34567890C", date(2023, 9, 1)),
			tenant(5, "Pedro Sánchez", "pedro@email.com", "+34 645 678 901", "45678901D", date(2024, 3, 1)),
			tenant(6, "Laura Díaz", "laura@email.com", "+34 656 789 012", "56789012E", date(2023, 11, 15)),
		}
		if err := tx.Create(&tenants).Error; err != nil {
			return err
		}

		users := []models.User{{Email: result.AdminEmail, Password: hash, Name: "Administrador", Role: models.UserRoleAdmin}}
		for i := range tenants {
			users = append(users, models.User{Email: tenants[i].Email, Password: hash, Name: tenants[i].Name,
				Role: models.UserRoleTenant, TenantID: ptr(tenants[i].ID)})
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		contracts := make([]models.Contract, 0, len(tenants))
		for i, t := range tenants {
			start := t.MoveIn
			contracts = append(contracts, models.Contract{
				ContractNumber: fmt.Sprintf("CTR-%d-%03d", start.Year(), i+1),
				StartDate:      start,
				EndDate:        start.AddDate(1, 0, -1),
				MonthlyRent:    rooms[roomIndex(rooms, t.RoomID)].Price,
				Deposit:        rooms[roomIndex(rooms, t.RoomID)].Price * 2,
				DepositPaid:    true,
				Status:         models.ContractStatusActive,
				TenantID:       t.ID,
			})
		}
		if err := tx.Create(&contracts).Error; err != nil {
			return err
		}

		var payments []models.Payment
		for _, t := range tenants {
			price := rooms[roomIndex(rooms, t.RoomID)].Price
			for i := -2; i <= 1; i++ {
				due := date(now.Year(), now.Month()+time.Month(i), 5)
				p := models.Payment{Amount: price, Concept: "alquiler", Status: models.PaymentStatusPending, DueDate: due, TenantID: t.ID}
				if i < 0 {
					p.Status = models.PaymentStatusPaid
					p.PaidDate = ptr(due)
					p.PaymentMethod = "transfer"
				}
				payments = append(payments, p)
			}
		}
		if err := tx.Create(&payments).Error; err != nil {
			return err
		}

		incidents := []models.Incident{
			{Title: "Grifo goteando", Description: "El grifo tiene un goteo constante", Category: models.IncidentCategoryPlumbing,
				Priority: models.IncidentPriorityMedium, Status: models.IncidentStatusOpen, RoomID: rooms[0].ID, TenantID: ptr(tenants[0].ID)},
			{Title: "Aire acondicionado no enfría", Description: "Solo expulsa aire ambiente", Category: models.IncidentCategoryElectrical,
				Priority: models.IncidentPriorityHigh, Status: models.IncidentStatusInProgress, RoomID: rooms[3].ID, TenantID: ptr(tenants[2].ID)},
			{Title: "Persiana atascada", Description: "No se puede subir ni bajar", Category: models.IncidentCategoryFurniture,
				Priority: models.IncidentPriorityLow, Status: models.IncidentStatusOpen, RoomID: rooms[1].ID, TenantID: ptr(tenants[1].ID)},
			{Title: "Humedad en pared", Description: "Mancha de humedad cerca de la ventana", Category: models.IncidentCategoryOther,
				Priority: models.IncidentPriorityHigh, Status: models.IncidentStatusOpen, RoomID: rooms[6].ID, TenantID: ptr(tenants[4].ID)},
		}
		if err := tx.Create(&incidents).Error; err != nil {
			return err
		}

		result.Properties = len(properties)
		result.Rooms = len(rooms)
		result.Tenants = len(tenants)
		result.Contracts = len(contracts)
		result.Payments = len(payments)
		result.Incidents = len(incidents)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	logger.Info("demo data seeded: %+v", *result)
	return result, nil
}

func roomIndex(rooms []models.Room, id string) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return 0
}
